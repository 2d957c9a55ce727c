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

// Package pathmatch compiles route-pattern strings and matches request paths
// against them, extracting named variables.
//
// Patterns look like "/api/users/{id}", "/files/**" or
// "/items/{sku:[A-Z0-9]+}". Compilation happens once per pattern; matching
// is pure computation over strings and runs on every inbound request, so the
// hot path avoids regexp recompilation, repeated pattern analysis and
// unnecessary allocation.
//
// # Quick Start
//
//	m := pathmatch.New()
//
//	p, err := m.Compile("/api/users/{id}/posts/{postID}")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := m.Match("/api/users/42/posts/7", p)
//	if res.Matched {
//	    fmt.Println(res.Var("id"), res.Var("postID")) // "42" "7"
//	}
//
// # Pattern Grammar
//
// '/' separates segments and must lead the pattern. Each segment is one of:
//
//	literal        exact text ("users", "v1")
//	*              exactly one path component
//	**             one or more path components, anywhere in the pattern
//	{name}         variable, binds the component to name
//	{name:regexp}  variable constrained by an anchored regular expression
//
// Escape embeds literal text containing '\', '{', '}' or '*'.
//
// A mid-pattern "**" backtracks: "/static/**/app.js" matches
// "/static/a/b/app.js" with the wildcard consuming "a/b". As the last
// segment, "**" must consume at least one component: "/api/**" matches
// "/api/v1" but not "/api".
//
// # Best-Match Selection
//
// MatchBest ranks candidates deterministically (static patterns first, then
// fewer "**" segments, then higher specificity rank) and returns the first
// match, so "/users/me" wins over "/users/{id}" for the path "/users/me".
// For a fixed candidate set that is matched repeatedly, PatternSet performs
// the ranking once at registration and serves static patterns from a hashed
// table behind a bloom filter.
//
// # Errors
//
// Pattern syntax problems surface only at compile time, wrapping
// compiler.ErrInvalidPattern. Matching never fails: a non-match is a Result
// with Matched=false, cheap to test while trying the next candidate.
//
// # Concurrency
//
// A Matcher is safe for concurrent use without external locking. Its caches
// (compiled patterns, match results) are synchronized bounded LRUs, and
// compiled patterns and results are immutable value objects. There are no
// suspension points and no I/O; matching cost is bounded by the
// compile-time segment ceiling.
//
// # Observability
//
// The matcher reports compile/match timings and cache outcomes through the
// MetricsRecorder interface; the metrics subpackage implements it on
// OpenTelemetry with Prometheus, OTLP and stdout providers.
package pathmatch
