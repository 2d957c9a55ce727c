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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashStringDeterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, HashString("/users"), HashString("/users"))
	assert.NotEqual(t, HashString("/users"), HashString("/user"))
	assert.NotEqual(t, HashString(""), HashString("a"))
}

// TestBloomFilterNoFalseNegatives is the only hard guarantee a bloom filter
// makes: an added key always tests positive.
func TestBloomFilterNoFalseNegatives(t *testing.T) {
	t.Parallel()

	bf := NewBloomFilter(1000, 3)

	keys := make([]string, 100)
	for i := range keys {
		keys[i] = fmt.Sprintf("/api/v1/resource/%d", i)
		bf.AddString(keys[i])
	}

	for _, key := range keys {
		assert.True(t, bf.TestString(key), "added key %q must test positive", key)
	}
}

func TestBloomFilterRejectsMostAbsentKeys(t *testing.T) {
	t.Parallel()

	bf := NewBloomFilter(4096, 3)
	for i := range 50 {
		bf.AddString(fmt.Sprintf("/present/%d", i))
	}

	// False positives are allowed but should be rare at this fill rate.
	falsePositives := 0
	for i := range 1000 {
		if bf.TestString(fmt.Sprintf("/absent/%d", i)) {
			falsePositives++
		}
	}
	assert.Less(t, falsePositives, 100, "false positive rate unexpectedly high")
}

func TestBloomFilterHashVariants(t *testing.T) {
	t.Parallel()

	bf := NewBloomFilter(1000, 4)

	hash := HashString("/users/42")
	bf.AddHash(hash)

	assert.True(t, bf.TestHash(hash))
	assert.True(t, bf.TestString("/users/42"))
	assert.False(t, bf.TestString("/users/43") && bf.TestString("/users/44") && bf.TestString("/users/45"),
		"three distinct absent keys all colliding is effectively impossible at this size")
}
