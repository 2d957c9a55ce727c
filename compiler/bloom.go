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

package compiler

// FNV-1a hash constants for inline hashing.
//
// FNV-1a is implemented inline instead of via hash/fnv because fnv.New64a()
// returns a hash.Hash64 interface whose Write/Sum64 calls cannot be inlined,
// and Write requires a []byte conversion (a copy) when hashing a string.
// The inline arithmetic is a streaming hash over the string bytes with zero
// allocations, which matters on the per-request lookup path.
const (
	fnvOffsetBasis = 14695981039346656037 // FNV-1a 64-bit offset basis
	fnvPrime       = 1099511628211        // FNV-1a 64-bit prime
)

// HashString computes the FNV-1a 64-bit hash of s without allocating.
// PatternSet uses it both as the static-table key and as the pre-computed
// bloom filter probe.
func HashString(s string) uint64 {
	hash := uint64(fnvOffsetBasis)
	for i := range len(s) {
		hash ^= uint64(s[i])
		hash *= fnvPrime
	}

	return hash
}

// BloomFilter answers "definitely not present" for static-pattern lookups
// before the hash table is consulted.
//
// A bloom filter never yields false negatives: if Test returns false the key
// was never added. False positives happen at a rate governed by the bit count
// and hash function count, and only cost one extra map lookup.
//
// Thread safety: the filter is write-once. All Add calls happen while the
// owning PatternSet holds its write lock; Test is read-only.
type BloomFilter struct {
	bits  []uint64 // each word holds 64 bits
	size  uint64   // total bit count
	seeds []uint64 // one XOR seed per hash function
}

// NewBloomFilter creates a filter with the given bit count and number of hash
// functions. Hash functions are derived from a single FNV-1a base hash by
// XORing distinct seeds, so adding and testing cost one string hash each.
func NewBloomFilter(size uint64, numHashFuncs int) *BloomFilter {
	bf := &BloomFilter{
		bits:  make([]uint64, (size+63)/64),
		size:  size,
		seeds: make([]uint64, numHashFuncs),
	}
	for i := range numHashFuncs {
		bf.seeds[i] = uint64(i + 1) //nolint:gosec // numHashFuncs is clamped small by callers
	}

	return bf
}

// position maps a seeded hash to a bit index.
func (bf *BloomFilter) position(baseHash, seed uint64) uint64 {
	return (baseHash ^ seed) % bf.size
}

// AddString records s in the filter.
func (bf *BloomFilter) AddString(s string) {
	bf.AddHash(HashString(s))
}

// AddHash records a pre-computed FNV-1a hash in the filter.
func (bf *BloomFilter) AddHash(baseHash uint64) {
	for _, seed := range bf.seeds {
		pos := bf.position(baseHash, seed)
		bf.bits[pos/64] |= 1 << (pos % 64)
	}
}

// TestString reports whether s might have been added.
func (bf *BloomFilter) TestString(s string) bool {
	return bf.TestHash(HashString(s))
}

// TestHash reports whether a key with the given pre-computed hash might have
// been added. Exits on the first clear bit, which is the common case when
// rejecting unknown paths.
func (bf *BloomFilter) TestHash(baseHash uint64) bool {
	for _, seed := range bf.seeds {
		pos := bf.position(baseHash, seed)
		if bf.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}

	return true
}
