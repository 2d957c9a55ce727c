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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpecificityOrdering verifies the relative ranks that best-match
// selection depends on.
func TestSpecificityOrdering(t *testing.T) {
	t.Parallel()

	c := New(DefaultConfig())
	rank := func(pattern string) int {
		p, err := c.Compile(pattern)
		require.NoError(t, err)
		return p.Specificity()
	}

	// Literal outranks every other kind in the same position.
	assert.Greater(t, rank("/users/me"), rank("/users/{id}"))
	assert.Greater(t, rank("/users/me"), rank("/users/*"))
	assert.Greater(t, rank("/users/me"), rank("/users/**"))

	// Constrained variable outranks unconstrained, which outranks wildcards.
	assert.Greater(t, rank("/users/{id:[0-9]+}"), rank("/users/{id}"))
	assert.Greater(t, rank("/users/{id}"), rank("/users/*"))
	assert.Greater(t, rank("/users/*"), rank("/users/**"))
}

// TestSpecificityDeterministic verifies the rank is a pure function of the
// segment sequence.
func TestSpecificityDeterministic(t *testing.T) {
	t.Parallel()

	a := New(DefaultConfig())
	b := New(DefaultConfig())

	for _, pattern := range []string{"/", "/users", "/users/{id}/posts/**", "/a/*/{x:[a-z]+}"} {
		pa, err := a.Compile(pattern)
		require.NoError(t, err)
		pb, err := b.Compile(pattern)
		require.NoError(t, err)

		assert.Equal(t, pa.Specificity(), pb.Specificity(), "pattern %q", pattern)
	}
}
