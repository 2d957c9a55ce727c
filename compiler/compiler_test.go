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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompile tests pattern compilation with various valid patterns.
func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		pattern            string
		wantSegments       int
		wantStatic         bool
		wantWildcard       bool
		wantVariables      bool
		wantMultiWildcards int
	}{
		{
			name:         "root pattern",
			pattern:      "/",
			wantSegments: 0,
			wantStatic:   true,
		},
		{
			name:         "simple static pattern",
			pattern:      "/users",
			wantSegments: 1,
			wantStatic:   true,
		},
		{
			name:         "multi-segment static pattern",
			pattern:      "/api/v1/users",
			wantSegments: 3,
			wantStatic:   true,
		},
		{
			name:          "pattern with variable",
			pattern:       "/users/{id}",
			wantSegments:  2,
			wantVariables: true,
		},
		{
			name:          "pattern with constrained variable",
			pattern:       "/users/{id:[0-9]+}",
			wantSegments:  2,
			wantVariables: true,
		},
		{
			name:         "pattern with single wildcard",
			pattern:      "/files/*/meta",
			wantSegments: 3,
			wantWildcard: true,
		},
		{
			name:               "pattern with terminal multi wildcard",
			pattern:            "/static/**",
			wantSegments:       2,
			wantWildcard:       true,
			wantMultiWildcards: 1,
		},
		{
			name:               "pattern with mid multi wildcard",
			pattern:            "/a/**/z",
			wantSegments:       3,
			wantWildcard:       true,
			wantMultiWildcards: 1,
		},
		{
			name:               "mixed pattern",
			pattern:            "/api/{version}/*/files/**",
			wantSegments:       5,
			wantWildcard:       true,
			wantVariables:      true,
			wantMultiWildcards: 1,
		},
		{
			name:         "escaped literal segment",
			pattern:      `/files/a\*b`,
			wantSegments: 2,
			wantStatic:   true,
		},
		{
			name:         "constraint with regex quantifier braces",
			pattern:      `/sku/{code:[A-Z]{3}}`,
			wantSegments: 2,
		},
	}

	c := New(DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := c.Compile(tt.pattern)
			require.NoError(t, err)
			require.NotNil(t, p)

			assert.Equal(t, tt.wantSegments, p.SegmentCount())
			assert.Equal(t, tt.wantStatic, p.IsStatic())
			assert.Equal(t, tt.wantWildcard, p.HasWildcard())
			assert.Equal(t, tt.wantMultiWildcards, p.MultiWildcards())
			assert.Equal(t, strings.TrimSpace(tt.pattern), p.Source())
			if tt.wantVariables {
				assert.True(t, p.HasVariables())
			}
		})
	}
}

// TestCompileErrors verifies the error taxonomy: every failure wraps
// ErrInvalidPattern plus a condition-specific sentinel.
func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		wantErr error
	}{
		{name: "empty pattern", pattern: "", wantErr: ErrEmptyPattern},
		{name: "whitespace-only pattern", pattern: "   ", wantErr: ErrEmptyPattern},
		{name: "missing leading slash", pattern: "users/list", wantErr: ErrMissingLeadingSlash},
		{name: "doubled slash", pattern: "/users//list", wantErr: ErrDoubledSlash},
		{name: "trailing doubled slash", pattern: "/users//", wantErr: ErrDoubledSlash},
		{name: "unclosed brace", pattern: "/users/{id", wantErr: ErrUnbalancedBraces},
		{name: "stray closing brace", pattern: "/users/id}", wantErr: ErrUnbalancedBraces},
		{name: "two variable groups in one segment", pattern: "/users/{a}{b}", wantErr: ErrUnbalancedBraces},
		{name: "text before variable group", pattern: "/users/x{id}", wantErr: ErrUnbalancedBraces},
		{name: "text after variable group", pattern: "/users/{id}x", wantErr: ErrUnbalancedBraces},
		{name: "empty variable name", pattern: "/users/{}", wantErr: ErrInvalidVariableName},
		{name: "variable name starts with digit", pattern: "/users/{1id}", wantErr: ErrInvalidVariableName},
		{name: "variable name with dash", pattern: "/users/{user-id}", wantErr: ErrInvalidVariableName},
		{name: "empty name with constraint", pattern: "/users/{:[0-9]+}", wantErr: ErrInvalidVariableName},
		{name: "malformed constraint regex", pattern: "/users/{id:[0-9}", wantErr: ErrInvalidConstraint},
		{name: "constraint with unclosed group", pattern: "/users/{id:(a|b}", wantErr: ErrInvalidConstraint},
	}

	c := New(DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := c.Compile(tt.pattern)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrInvalidPattern)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCompileMaxSegments(t *testing.T) {
	t.Parallel()

	c := New(Config{MaxSegments: 4})

	p, err := c.Compile("/a/b/c/d")
	require.NoError(t, err)
	assert.Equal(t, 4, p.SegmentCount())

	p, err = c.Compile("/a/b/c/d/e")
	require.Error(t, err)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrTooManySegments)
}

func TestCompileTrailingSlash(t *testing.T) {
	t.Parallel()

	c := New(DefaultConfig())

	p, err := c.Compile("/users/")
	require.NoError(t, err)
	assert.True(t, p.TrailingSlash())
	assert.Equal(t, 1, p.SegmentCount())

	p, err = c.Compile("/users")
	require.NoError(t, err)
	assert.False(t, p.TrailingSlash())

	// Root is not a trailing-slash pattern.
	p, err = c.Compile("/")
	require.NoError(t, err)
	assert.False(t, p.TrailingSlash())
}

// TestCompileIdempotent verifies that compiling the same source twice yields
// the same pattern, via the cache or not.
func TestCompileIdempotent(t *testing.T) {
	t.Parallel()

	cached := New(DefaultConfig())
	uncached := New(Config{CacheCapacity: -1})

	for _, c := range []*Compiler{cached, uncached} {
		p1, err := c.Compile("/users/{id}/posts/**")
		require.NoError(t, err)
		p2, err := c.Compile("/users/{id}/posts/**")
		require.NoError(t, err)

		assert.Equal(t, p1.Source(), p2.Source())
		assert.Equal(t, p1.SegmentCount(), p2.SegmentCount())
		assert.Equal(t, p1.Specificity(), p2.Specificity())
	}

	// With the cache on, the second compile returns the identical object.
	p1, _ := cached.Compile("/cached/route")
	p2, _ := cached.Compile("/cached/route")
	assert.Same(t, p1, p2)
}

func TestCompileCache(t *testing.T) {
	t.Parallel()

	c := New(DefaultConfig())

	_, ok := c.Cached("/users")
	assert.False(t, ok)

	p, err := c.Compile("/users")
	require.NoError(t, err)

	got, ok := c.Cached("/users")
	require.True(t, ok)
	assert.Same(t, p, got)

	// Cached normalizes like Compile.
	got, ok = c.Cached("  /users  ")
	require.True(t, ok)
	assert.Same(t, p, got)

	// Failed compiles are not cached.
	_, err = c.Compile("/bad/{")
	require.Error(t, err)
	_, ok = c.Cached("/bad/{")
	assert.False(t, ok)
}

func TestReconfigurePurgesCache(t *testing.T) {
	t.Parallel()

	c := New(DefaultConfig())

	p, err := c.Compile("/users")
	require.NoError(t, err)
	assert.False(t, p.CaseInsensitive())

	c.Reconfigure(Config{CaseInsensitive: true})

	_, ok := c.Cached("/users")
	assert.False(t, ok, "reconfigure must drop patterns compiled under the old policy")

	p, err = c.Compile("/users")
	require.NoError(t, err)
	assert.True(t, p.CaseInsensitive())
}

func TestConfigNormalize(t *testing.T) {
	t.Parallel()

	c := New(Config{})
	cfg := c.Config()
	assert.Equal(t, DefaultMaxSegments, cfg.MaxSegments)
	assert.Equal(t, DefaultCacheCapacity, cfg.CacheCapacity)

	c = New(Config{MaxSegments: 8, CacheCapacity: -1})
	cfg = c.Config()
	assert.Equal(t, 8, cfg.MaxSegments)
	assert.Equal(t, -1, cfg.CacheCapacity)
}

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "users", want: "users"},
		{name: "asterisk", in: "a*b", want: `a\*b`},
		{name: "braces", in: "{id}", want: `\{id\}`},
		{name: "backslash", in: `a\b`, want: `a\\b`},
		{name: "everything", in: `\{*}`, want: `\\\{\*\}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

// TestEscapeRoundTrip verifies that an escaped segment compiles to a literal
// matching exactly the original text.
func TestEscapeRoundTrip(t *testing.T) {
	t.Parallel()

	c := New(DefaultConfig())

	for _, text := range []string{"a*b", "{id}", `back\slash`, "**", "plain"} {
		p, err := c.Compile("/files/" + Escape(text))
		require.NoError(t, err, "escaped %q", text)

		segs := p.Segments()
		require.Len(t, segs, 2)
		assert.Equal(t, KindLiteral, segs[1].Kind)
		assert.Equal(t, text, segs[1].Value)
		assert.True(t, p.IsStatic())
	}
}

func TestValidVariableName(t *testing.T) {
	t.Parallel()

	valid := []string{"id", "userId", "user_id", "_private", "v2", "A"}
	invalid := []string{"", "2fast", "user-id", "user id", "id!", "naïve"}

	for _, name := range valid {
		assert.True(t, validVariableName(name), "expected %q to be valid", name)
	}
	for _, name := range invalid {
		assert.False(t, validVariableName(name), "expected %q to be invalid", name)
	}
}
