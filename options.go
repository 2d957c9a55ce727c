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

// Option configures a Matcher during New.
type Option func(*Matcher)

// DefaultMatchCacheCapacity bounds the match-result cache when no capacity
// is configured.
const DefaultMatchCacheCapacity = 1000

// WithCaseInsensitive makes literal segments compare with case folding, so
// the pattern "/Users" matches the path "/users".
//
// Variable constraints are unaffected: they match exactly as written.
//
// Example:
//
//	m := pathmatch.New(pathmatch.WithCaseInsensitive())
func WithCaseInsensitive() Option {
	return func(m *Matcher) {
		m.cfg.CaseInsensitive = true
	}
}

// WithOptionalTrailingSlash ignores a single trailing '/' on both path and
// pattern (except root), so "/health" and "/health/" are interchangeable.
//
// Without this option, path and pattern must agree on trailing-slash
// presence or the match fails.
func WithOptionalTrailingSlash() Option {
	return func(m *Matcher) {
		m.cfg.OptionalTrailingSlash = true
	}
}

// WithStrictValidation enables the reserved strict-validation mode.
// The flag is carried on the configuration surface for forward compatibility
// and currently changes nothing.
func WithStrictValidation() Option {
	return func(m *Matcher) {
		m.cfg.Strict = true
	}
}

// WithMaxSegments caps the number of segments a pattern may contain.
// Compilation fails with compiler.ErrTooManySegments beyond the ceiling.
// The ceiling also bounds backtracking work at match time.
//
// Default: compiler.DefaultMaxSegments (256).
func WithMaxSegments(n int) Option {
	return func(m *Matcher) {
		m.cfg.MaxSegments = n
	}
}

// WithCacheCapacity bounds the compiled-pattern cache. Negative disables
// pattern caching entirely.
//
// Default: compiler.DefaultCacheCapacity (1000).
func WithCacheCapacity(n int) Option {
	return func(m *Matcher) {
		m.cfg.CacheCapacity = n
	}
}

// WithMatchCacheCapacity bounds the match-result cache. Zero or negative
// disables it, same as WithoutMatchCache.
//
// Default: DefaultMatchCacheCapacity (1000).
func WithMatchCacheCapacity(n int) Option {
	return func(m *Matcher) {
		m.matchCacheCapacity = n
	}
}

// WithoutMatchCache disables the match-result cache. Matching stays correct;
// every call recomputes. Follows the "Without" prefix convention for
// disabling features that are on by default.
func WithoutMatchCache() Option {
	return func(m *Matcher) {
		m.matchCacheCapacity = -1
	}
}

// WithMetricsRecorder attaches a MetricsRecorder to the matcher.
//
// Example with the metrics subpackage:
//
//	rec, err := metrics.NewRecorder(metrics.WithPrometheus())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := pathmatch.New(pathmatch.WithMetricsRecorder(rec))
func WithMetricsRecorder(rec MetricsRecorder) Option {
	return func(m *Matcher) {
		if rec != nil {
			m.metrics = rec
		}
	}
}
