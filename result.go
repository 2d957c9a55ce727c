// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pathmatch

// Result is the outcome of one match attempt.
//
// Results are plain value objects with no back-references into the matcher.
// A Result returned from a cached lookup shares its Vars map and Segments
// slice with other callers; treat both as read-only.
type Result struct {
	// Matched reports whether the path satisfied the pattern. A false value
	// is a first-class outcome, not an error: failing to match one candidate
	// among many is the common case during routing.
	Matched bool

	// Vars maps variable names to the path components they bound.
	// Nil when the pattern has no variables or the match failed.
	Vars map[string]string

	// Segments holds the path components consumed by the match, in order.
	// Nil when the match failed.
	Segments []string

	// Path is the request path this result was produced for.
	Path string

	// Pattern is the source text of the pattern that was attempted, kept for
	// diagnostics. Empty when MatchBest exhausted all candidates.
	Pattern string
}

// Var returns the value bound to name, or "" when absent.
func (r *Result) Var(name string) string {
	return r.Vars[name]
}

// SetVar records a variable binding. It implements compiler.VarBinder; the
// matcher drives it exactly once per variable after a successful walk.
func (r *Result) SetVar(name, value string) {
	if r.Vars == nil {
		r.Vars = make(map[string]string, 4)
	}
	r.Vars[name] = value
}
