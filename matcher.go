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

import (
	"slices"
	"strings"
	"time"

	"rivaas.dev/pathmatch/compiler"
)

// Matcher compiles path patterns and matches request paths against them.
//
// A Matcher owns one compiler (with its pattern cache) and one bounded
// match-result cache. Construct it once and share it: Compile, Match and
// MatchBest are safe to call concurrently from any number of goroutines
// without external locking.
type Matcher struct {
	compiler *compiler.Compiler

	// matchCache memoizes Match outcomes keyed by pattern identity and path.
	// Nil when disabled.
	matchCache *compiler.Cache[matchKey, Result]

	metrics MetricsRecorder

	// Construction-time settings, consumed by New.
	cfg                compiler.Config
	matchCacheCapacity int
}

// matchKey identifies one cached match outcome. The pattern enters by
// identity, not source text: literal segments may contain any byte, so no
// string concatenation of source and path can be unambiguous. Identity also
// scopes entries to one compile, which keeps the cache coherent across
// reconfiguration (a recompiled pattern is a new key).
type matchKey struct {
	pattern *compiler.Pattern
	path    string
}

// New creates a Matcher. Options follow the functional-option convention;
// zero options yields the default configuration (case-sensitive, strict
// trailing slash, 256-segment ceiling, 1000-entry caches).
func New(opts ...Option) *Matcher {
	m := &Matcher{
		cfg:                compiler.DefaultConfig(),
		matchCacheCapacity: DefaultMatchCacheCapacity,
		metrics:            nopMetrics{},
	}
	for _, opt := range opts {
		opt(m)
	}

	m.compiler = compiler.New(m.cfg)
	if m.matchCacheCapacity > 0 {
		m.matchCache = compiler.NewCache[matchKey, Result](m.matchCacheCapacity)
	}

	return m
}

// Reconfigure rebuilds the matcher's configuration from defaults plus the
// given options and purges both caches: the compiled-pattern cache and the
// match-result cache both hold artifacts of the old policy. The metrics
// recorder is retained unless an option replaces it.
//
// Like compiler.Compiler.Reconfigure, this belongs to a single-threaded
// configuration phase and must not race with Compile or Match.
func (m *Matcher) Reconfigure(opts ...Option) {
	m.cfg = compiler.DefaultConfig()
	m.matchCacheCapacity = DefaultMatchCacheCapacity
	for _, opt := range opts {
		opt(m)
	}

	m.compiler.Reconfigure(m.cfg)
	if m.matchCacheCapacity > 0 {
		m.matchCache = compiler.NewCache[matchKey, Result](m.matchCacheCapacity)
	} else {
		m.matchCache = nil
	}
}

// Compiler returns the matcher's pattern compiler for direct use.
func (m *Matcher) Compiler() *compiler.Compiler {
	return m.compiler
}

// Compile turns a pattern string into a compiled Pattern, consulting the
// pattern cache first. See compiler.Compiler.Compile for the grammar and the
// error taxonomy.
func (m *Matcher) Compile(pattern string) (*compiler.Pattern, error) {
	start := time.Now()

	if p, ok := m.compiler.Cached(pattern); ok {
		m.metrics.RecordCompile(time.Since(start), true, nil)
		return p, nil
	}

	p, err := m.compiler.Compile(pattern)
	m.metrics.RecordCompile(time.Since(start), false, err)

	return p, err
}

// MustCompile is Compile that panics on invalid patterns. Intended for
// package-level pattern tables where a bad pattern is a programming error.
func (m *Matcher) MustCompile(pattern string) *compiler.Pattern {
	p, err := m.Compile(pattern)
	if err != nil {
		panic(err)
	}

	return p
}

// Match matches path against a compiled pattern. It never returns an error:
// malformed paths, trailing-slash disagreement, unmet constraints and plain
// non-matches all yield a Result with Matched=false.
func (m *Matcher) Match(path string, p *compiler.Pattern) Result {
	start := time.Now()

	var key matchKey
	if m.matchCache != nil {
		key = matchKey{pattern: p, path: path}
		if res, ok := m.matchCache.Get(key); ok {
			m.metrics.RecordMatch(time.Since(start), res.Matched, true)
			return res
		}
	}

	res := matchOnce(path, p)

	if m.matchCache != nil {
		m.matchCache.Put(key, res)
	}
	m.metrics.RecordMatch(time.Since(start), res.Matched, false)

	return res
}

// MatchBest matches path against every candidate and returns the result of
// the most specific one that matches, or an unmatched Result when all
// candidates fail.
//
// Candidates are attempted in a deterministic order: static patterns first,
// then fewer multi-segment wildcards, then higher specificity rank, with the
// pattern source text as the final tiebreak. The first success in that order
// wins, so for a fixed candidate set the outcome never depends on input
// order.
func (m *Matcher) MatchBest(path string, candidates []*compiler.Pattern) Result {
	switch len(candidates) {
	case 0:
		return Result{Path: path}
	case 1:
		return m.Match(path, candidates[0])
	}

	ordered := slices.Clone(candidates)
	slices.SortStableFunc(ordered, comparePatterns)

	for _, p := range ordered {
		if res := m.Match(path, p); res.Matched {
			return res
		}
	}

	return Result{Path: path}
}

// comparePatterns orders candidates from most to least specific:
// static before non-static, fewer '**' segments, higher specificity rank,
// then source text so the order is total.
func comparePatterns(a, b *compiler.Pattern) int {
	if a.IsStatic() != b.IsStatic() {
		if a.IsStatic() {
			return -1
		}
		return 1
	}
	if d := a.MultiWildcards() - b.MultiWildcards(); d != 0 {
		return d
	}
	if d := b.Specificity() - a.Specificity(); d != 0 {
		return d
	}

	return strings.Compare(a.Source(), b.Source())
}

// Escape backslash-escapes pattern metacharacters so arbitrary text can be
// embedded in a pattern as a literal segment. Forwards to compiler.Escape.
func Escape(segment string) string {
	return compiler.Escape(segment)
}

// matchOnce performs one uncached match attempt.
func matchOnce(path string, p *compiler.Pattern) Result {
	res := Result{Path: path, Pattern: p.Source()}

	// Trailing-slash policy comes first. With the optional policy a single
	// trailing '/' is stripped from the path (the pattern's was stripped at
	// compile time); otherwise both sides must agree.
	trimmed := path
	pathTrailing := len(path) > 1 && strings.HasSuffix(path, "/")
	switch {
	case p.OptionalTrailingSlash():
		if pathTrailing {
			trimmed = path[:len(path)-1]
		}
	case pathTrailing != p.TrailingSlash():
		return res
	case pathTrailing:
		trimmed = path[:len(path)-1]
	}

	components, ok := splitPath(trimmed)
	if !ok {
		// Malformed separators are a non-match, never an error.
		return res
	}

	if p.MatchComponents(components, &res) {
		res.Matched = true
		res.Segments = components
	}

	return res
}

// splitPath splits a request path into components without strings.Split
// (no intermediate allocations beyond the result slice). It reports false
// for malformed paths: missing leading '/' or empty components from doubled
// separators.
func splitPath(path string) ([]string, bool) {
	if path == "" || path[0] != '/' {
		return nil, false
	}
	if path == "/" {
		return nil, true
	}

	components := make([]string, 0, strings.Count(path, "/"))
	start := 1
	for start <= len(path) {
		end := start
		for end < len(path) && path[end] != '/' {
			end++
		}
		if end == start {
			return nil, false
		}
		components = append(components, path[start:end])
		start = end + 1
	}

	return components, true
}
