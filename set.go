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
	"sync"

	"rivaas.dev/pathmatch/compiler"
)

// Default bloom filter sizing for PatternSet static lookups.
const (
	defaultBloomFilterSize   = 1000
	defaultBloomHashFuncs    = 3
	minStaticForBloomLookups = 10
)

// SetOption configures a PatternSet.
type SetOption func(*PatternSet)

// WithBloomFilterSize sets the bloom filter bit count used for static-pattern
// negative lookups. Larger sizes reduce false positives.
//
// Default: 1000. Recommended: 2-3x the number of static patterns.
func WithBloomFilterSize(size uint64) SetOption {
	return func(s *PatternSet) {
		if size > 0 {
			s.bloomSize = size
		}
	}
}

// WithBloomFilterHashFunctions sets the number of bloom filter hash
// functions. More functions reduce false positives at a small per-lookup
// cost. Values are clamped to [1, 10].
//
// Default: 3.
func WithBloomFilterHashFunctions(n int) SetOption {
	return func(s *PatternSet) {
		s.bloomHashes = max(1, min(n, 10))
	}
}

// PatternSet holds a registered candidate set for repeated best-match
// lookups against the same patterns.
//
// MatchBest sorts its candidates on every call; a PatternSet does the work
// once at registration instead. Static patterns go into an FNV-1a-hashed
// table guarded by a bloom filter for negative lookups, and dynamic patterns
// are kept pre-sorted in best-match order, so each lookup is one hash plus an
// in-order scan of the dynamic candidates.
//
// Thread safety: Add and Match are safe for concurrent use. Registration
// typically happens during a configuration phase, after which Match runs
// under a read lock only.
type PatternSet struct {
	matcher *Matcher

	mu      sync.RWMutex
	static  map[uint64]*compiler.Pattern
	bloom   *compiler.BloomFilter
	dynamic []*compiler.Pattern

	bloomSize   uint64
	bloomHashes int
}

// NewSet creates an empty PatternSet bound to this matcher.
func (m *Matcher) NewSet(opts ...SetOption) *PatternSet {
	s := &PatternSet{
		matcher:     m,
		static:      make(map[uint64]*compiler.Pattern, 16),
		bloomSize:   defaultBloomFilterSize,
		bloomHashes: defaultBloomHashFuncs,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.bloom = compiler.NewBloomFilter(s.bloomSize, s.bloomHashes)

	return s
}

// Add registers compiled patterns with the set. Re-adding a static pattern
// with the same lookup key replaces the previous entry.
func (s *PatternSet) Add(patterns ...*compiler.Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range patterns {
		if p == nil {
			continue
		}
		if p.IsStatic() {
			key := s.staticKey(p.Source())
			s.static[compiler.HashString(key)] = p
			s.bloom.AddString(key)

			continue
		}

		s.dynamic = append(s.dynamic, p)
	}

	// Keep dynamic candidates in best-match order so Match scans in order
	// and stops at the first success.
	slices.SortStableFunc(s.dynamic, comparePatterns)
}

// CompileAndAdd compiles each pattern with the set's matcher and registers
// it. The first compile error aborts; patterns added before the failure stay
// registered.
func (s *PatternSet) CompileAndAdd(patterns ...string) error {
	for _, text := range patterns {
		p, err := s.matcher.Compile(text)
		if err != nil {
			return err
		}
		s.Add(p)
	}

	return nil
}

// Len returns the number of registered patterns.
func (s *PatternSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.static) + len(s.dynamic)
}

// Match returns the result of the most specific registered pattern that
// matches path, or an unmatched Result.
//
// Static patterns are tried first via exact-key lookup (bloom filter, then
// hash table, then a confirming match that also applies trailing-slash
// policy); dynamic patterns are then scanned in best-match order.
func (s *PatternSet) Match(path string) Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.static) > 0 {
		key := s.staticKey(path)
		hash := compiler.HashString(key)

		// Bloom filter overhead is not worth it for tiny sets.
		probe := len(s.static) < minStaticForBloomLookups || s.bloom.TestHash(hash)
		if probe {
			if p, ok := s.static[hash]; ok {
				// Confirm: guards against hash collisions and enforces the
				// trailing-slash policy that the key folds away.
				if res := s.matcher.Match(path, p); res.Matched {
					return res
				}
			}
		}
	}

	for _, p := range s.dynamic {
		if res := s.matcher.Match(path, p); res.Matched {
			return res
		}
	}

	return Result{Path: path}
}

// staticKey normalizes a path or static pattern source into the exact-lookup
// key: trailing slash stripped under the optional policy, case folded when
// matching is case-insensitive.
func (s *PatternSet) staticKey(text string) string {
	cfg := s.matcher.compiler.Config()
	if cfg.OptionalTrailingSlash && len(text) > 1 {
		text = strings.TrimSuffix(text, "/")
	}
	if cfg.CaseInsensitive {
		text = strings.ToLower(text)
	}

	return text
}
