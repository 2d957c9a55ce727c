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
	"regexp"
	"strings"
)

// Config holds the tunables consumed by both the compiler and the matcher.
//
// A Config is owned by exactly one Compiler. Changing policy after
// construction goes through Compiler.Reconfigure, which purges the pattern
// cache because cached patterns bake the policy in at compile time.
type Config struct {
	// CaseInsensitive makes literal segments compare with case folding.
	CaseInsensitive bool

	// OptionalTrailingSlash ignores a single trailing '/' on the request path
	// (and on the pattern) when matching. When off, path and pattern must
	// agree on trailing-slash presence.
	OptionalTrailingSlash bool

	// Strict is reserved for stricter pattern validation. It is carried on
	// the configuration surface for forward compatibility and currently has
	// no effect.
	Strict bool

	// MaxSegments caps the number of segments a pattern may contain.
	// Zero means DefaultMaxSegments. The ceiling also bounds matching work:
	// backtracking depth can never exceed the segment count.
	MaxSegments int

	// CacheCapacity bounds the compiled-pattern cache. Zero means
	// DefaultCacheCapacity; negative disables caching.
	CacheCapacity int
}

// Defaults for Config fields left at their zero value.
const (
	DefaultMaxSegments   = 256
	DefaultCacheCapacity = 1000
)

// DefaultConfig returns the default compiler configuration.
func DefaultConfig() Config {
	return Config{
		MaxSegments:   DefaultMaxSegments,
		CacheCapacity: DefaultCacheCapacity,
	}
}

// normalize replaces zero-value knobs with defaults.
func (cfg Config) normalize() Config {
	if cfg.MaxSegments == 0 {
		cfg.MaxSegments = DefaultMaxSegments
	}
	if cfg.CacheCapacity == 0 {
		cfg.CacheCapacity = DefaultCacheCapacity
	}

	return cfg
}

// Compiler turns pattern strings into immutable Patterns and caches the
// results keyed by the normalized pattern text.
//
// Thread safety: Compile, Cached and Escape are safe for concurrent use; the
// pattern cache is internally synchronized. Reconfigure belongs to a
// single-threaded configuration phase and must not race with Compile;
// patterns compiled under the old policy stay valid value objects, only the
// cache is dropped.
type Compiler struct {
	cfg   Config
	cache *Cache[string, *Pattern]
}

// New creates a Compiler with the given configuration. Zero-value knobs fall
// back to defaults (see Config).
func New(cfg Config) *Compiler {
	cfg = cfg.normalize()

	return &Compiler{
		cfg:   cfg,
		cache: NewCache[string, *Pattern](cfg.CacheCapacity),
	}
}

// Config returns the compiler's effective configuration.
func (c *Compiler) Config() Config {
	return c.cfg
}

// Reconfigure replaces the compiler's configuration and purges the pattern
// cache, since cached patterns carry the old matching policy.
func (c *Compiler) Reconfigure(cfg Config) {
	cfg = cfg.normalize()
	c.cfg = cfg
	c.cache = NewCache[string, *Pattern](cfg.CacheCapacity)
}

// Cached returns the already-compiled Pattern for the given source, if any.
// It performs the same normalization as Compile but never compiles.
func (c *Compiler) Cached(pattern string) (*Pattern, bool) {
	return c.cache.Get(strings.TrimSpace(pattern))
}

// Compile validates and compiles a pattern string.
//
// The pattern grammar: '/' separates segments; a segment is a literal, '*'
// (one component), '**' (one-or-more components), '{name}' (variable) or
// '{name:constraint}' (variable constrained by an anchored regular
// expression). Literal text containing '\', '{', '}' or '*' must be escaped
// with Escape.
//
// Errors wrap ErrInvalidPattern plus a condition-specific sentinel
// (ErrMissingLeadingSlash, ErrDoubledSlash, ErrUnbalancedBraces,
// ErrInvalidVariableName, ErrInvalidConstraint, ErrTooManySegments).
func (c *Compiler) Compile(pattern string) (*Pattern, error) {
	normalized := strings.TrimSpace(pattern)

	if p, ok := c.cache.Get(normalized); ok {
		return p, nil
	}

	p, err := c.compile(normalized)
	if err != nil {
		return nil, err
	}
	c.cache.Put(normalized, p)

	return p, nil
}

// compile performs validation, splitting and classification without touching
// the cache.
func (c *Compiler) compile(normalized string) (*Pattern, error) {
	if normalized == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, ErrEmptyPattern)
	}
	if normalized[0] != '/' {
		return nil, fmt.Errorf("%w: %w (%q)", ErrInvalidPattern, ErrMissingLeadingSlash, normalized)
	}
	if strings.Contains(normalized, "//") {
		return nil, fmt.Errorf("%w: %w (%q)", ErrInvalidPattern, ErrDoubledSlash, normalized)
	}

	p := &Pattern{
		source:                normalized,
		caseInsensitive:       c.cfg.CaseInsensitive,
		optionalTrailingSlash: c.cfg.OptionalTrailingSlash,
	}

	body := normalized[1:]
	if trimmed, ok := strings.CutSuffix(body, "/"); ok {
		// Root "/" has an empty body and never reaches here (the cut would
		// need "//" which is rejected above).
		p.trailingSlash = true
		body = trimmed
	}

	if body == "" {
		// Root pattern: zero segments, static by definition.
		p.isStatic = true
		return p, nil
	}

	raw := strings.Split(body, "/")
	if len(raw) > c.cfg.MaxSegments {
		return nil, fmt.Errorf("%w: %w (%d > %d)", ErrInvalidPattern, ErrTooManySegments, len(raw), c.cfg.MaxSegments)
	}

	p.segments = make([]Segment, 0, len(raw))
	for _, text := range raw {
		seg, err := classifySegment(text)
		if err != nil {
			return nil, err
		}
		p.segments = append(p.segments, seg)
	}

	// One scan over the segment sequence derives all flags.
	for i := range p.segments {
		switch p.segments[i].Kind {
		case KindVariable:
			p.hasVariables = true
		case KindWildcard:
			p.hasWildcard = true
		case KindMultiWildcard:
			p.hasWildcard = true
			p.multiWildcards++
		case KindLiteral:
		}
	}
	p.isStatic = !p.hasWildcard && !p.hasVariables
	p.specificity = specificity(p.segments)

	return p, nil
}

// classifySegment turns one raw segment string into a Segment.
func classifySegment(raw string) (Segment, error) {
	switch raw {
	case "*":
		return Segment{Kind: KindWildcard}, nil
	case "**":
		return Segment{Kind: KindMultiWildcard}, nil
	}

	// Scan unescaped braces. We need the positions of the outermost pair to
	// decide between a literal and a variable, and to reject unmatched or
	// nested variable braces.
	open := -1
	closing := -1
	depth := 0
	escaped := false
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '{':
			if depth == 0 {
				if open >= 0 {
					// A second top-level group: "{a}{b}" is not a segment.
					return Segment{}, fmt.Errorf("%w: %w (segment %q)", ErrInvalidPattern, ErrUnbalancedBraces, raw)
				}
				open = i
			}
			depth++
		case '}':
			depth--
			if depth < 0 {
				return Segment{}, fmt.Errorf("%w: %w (segment %q)", ErrInvalidPattern, ErrUnbalancedBraces, raw)
			}
			if depth == 0 {
				closing = i
			}
		}
	}
	if depth != 0 {
		return Segment{}, fmt.Errorf("%w: %w (segment %q)", ErrInvalidPattern, ErrUnbalancedBraces, raw)
	}

	if open < 0 {
		// No variable braces: plain literal with escapes resolved.
		return Segment{Kind: KindLiteral, Value: unescapeSegment(raw)}, nil
	}

	if open != 0 || closing != len(raw)-1 {
		// A brace group must span the entire segment ("x{id}" and "{id}x"
		// are malformed, not literals).
		return Segment{}, fmt.Errorf("%w: %w (segment %q)", ErrInvalidPattern, ErrUnbalancedBraces, raw)
	}

	inner := raw[1 : len(raw)-1]
	name := inner
	constraint := ""
	if i := strings.IndexByte(inner, ':'); i >= 0 {
		name = inner[:i]
		constraint = inner[i+1:]
	}

	if !validVariableName(name) {
		return Segment{}, fmt.Errorf("%w: %w (%q in segment %q)", ErrInvalidPattern, ErrInvalidVariableName, name, raw)
	}

	seg := Segment{Kind: KindVariable, Name: name, ConstraintExpr: constraint}
	if constraint != "" {
		// Anchored full-match; the non-capturing group keeps alternation
		// inside the anchors.
		re, err := regexp.Compile("^(?:" + constraint + ")$")
		if err != nil {
			return Segment{}, fmt.Errorf("%w: %w (%q in segment %q): %w", ErrInvalidPattern, ErrInvalidConstraint, constraint, raw, err)
		}
		seg.Constraint = re
	}

	return seg, nil
}

// validVariableName reports whether name matches [A-Za-z_][A-Za-z0-9_]*.
func validVariableName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == '_':
		case ch >= '0' && ch <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// Escape backslash-escapes '\', '{', '}' and '*' so arbitrary text can be
// embedded in a pattern as a literal segment.
func Escape(segment string) string {
	if !strings.ContainsAny(segment, `\{}*`) {
		return segment
	}

	var b strings.Builder
	b.Grow(len(segment) + 4)
	for i := 0; i < len(segment); i++ {
		switch segment[i] {
		case '\\', '{', '}', '*':
			b.WriteByte('\\')
		}
		b.WriteByte(segment[i])
	}

	return b.String()
}

// unescapeSegment removes the backslashes Escape inserts. Backslashes not
// followed by an escapable character are kept as-is.
func unescapeSegment(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			switch raw[i+1] {
			case '\\', '{', '}', '*':
				i++
			}
		}
		b.WriteByte(raw[i])
	}

	return b.String()
}
