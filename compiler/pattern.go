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

// Pattern is a compiled route pattern: an ordered segment sequence plus
// metadata derived once at compile time.
//
// Thread safety: a Pattern is immutable after Compile returns. It is reused
// across all matches against that pattern and is safe to share between
// concurrent callers without locking.
type Pattern struct {
	source   string
	segments []Segment

	// Derived metadata, computed by a single scan over segments.
	isStatic       bool // no wildcards and no variables
	hasWildcard    bool
	hasVariables   bool
	multiWildcards int
	specificity    int

	// Matching policy captured from the compiler configuration.
	caseInsensitive       bool
	optionalTrailingSlash bool

	// trailingSlash records whether the source pattern (beyond root) ended in
	// '/'. Consulted only when optionalTrailingSlash is off.
	trailingSlash bool
}

// Source returns the normalized pattern text this Pattern was compiled from.
func (p *Pattern) Source() string { return p.source }

// String returns the pattern source, satisfying fmt.Stringer.
func (p *Pattern) String() string { return p.source }

// Segments returns the compiled segment sequence.
//
// NOTE: the slice is shared, not copied. Callers MUST NOT modify it; the
// whole concurrency contract of Pattern rests on its immutability.
func (p *Pattern) Segments() []Segment { return p.segments }

// SegmentCount returns the number of pattern segments.
func (p *Pattern) SegmentCount() int { return len(p.segments) }

// IsStatic reports whether the pattern consists of literal segments only.
// Static patterns can be matched by plain string comparison.
func (p *Pattern) IsStatic() bool { return p.isStatic }

// HasWildcard reports whether the pattern contains '*' or '**' segments.
func (p *Pattern) HasWildcard() bool { return p.hasWildcard }

// HasVariables reports whether the pattern contains variable segments.
func (p *Pattern) HasVariables() bool { return p.hasVariables }

// MultiWildcards returns the number of '**' segments. Used when ordering
// candidate patterns: fewer multi-wildcards means a more specific pattern.
func (p *Pattern) MultiWildcards() int { return p.multiWildcards }

// Specificity returns the pattern's specificity rank. Higher ranks are more
// specific. The rank is deterministic for identical segment sequences.
func (p *Pattern) Specificity() int { return p.specificity }

// CaseInsensitive reports whether literal comparison folds case.
func (p *Pattern) CaseInsensitive() bool { return p.caseInsensitive }

// OptionalTrailingSlash reports whether a single trailing '/' on the request
// path is ignored when matching this pattern.
func (p *Pattern) OptionalTrailingSlash() bool { return p.optionalTrailingSlash }

// TrailingSlash reports whether the source pattern ended in '/'. Only
// meaningful when OptionalTrailingSlash is false, in which case path and
// pattern must agree on trailing-slash presence.
func (p *Pattern) TrailingSlash() bool { return p.trailingSlash }

// VarBinder receives variable bindings from a successful match.
// Implementations need no internal locking: a binder is only ever driven by
// the single goroutine performing the match.
type VarBinder interface {
	SetVar(name, value string)
}

// binding is one name→value pair collected during a match walk. Bindings are
// buffered and only delivered to the VarBinder after the whole walk succeeds,
// so bindings from abandoned backtracking branches never leak out.
type binding struct {
	name  string
	value string
}

// MatchComponents matches a pre-split path (one string per component, all
// non-empty) against this pattern. On success it reports true and delivers
// every variable binding to binder; binder may be nil for a probe-only match.
//
// Trailing-slash policy is the caller's concern: components carry no slash
// information.
func (p *Pattern) MatchComponents(components []string, binder VarBinder) bool {
	binds, ok := matchSegments(p.segments, components, nil, p.caseInsensitive)
	if !ok {
		return false
	}

	if binder != nil {
		for i := range binds {
			binder.SetVar(binds[i].name, binds[i].value)
		}
	}

	return true
}

// matchSegments walks pattern segments and path components in lock-step.
//
// Multi-segment wildcards are the only source of non-determinism. Two cases:
//
//   - '**' as the last segment consumes all remaining components, requiring
//     at least one: "/api/**" matches "/api/v1" but never "/api".
//
//   - '**' followed by more segments backtracks: the wildcard first takes its
//     mandatory one component, then split points are scanned left to right,
//     each attempting the entire remaining pattern tail against the remaining
//     component suffix. The first split point that consumes the whole suffix
//     wins.
//
// Recursion depth is bounded by the number of '**' segments, which the
// compile-time segment ceiling caps, so the stack stays shallow even for
// adversarial patterns.
//
// Bindings accumulate in binds via append; a failed branch simply discards
// the returned slice, so the caller's prefix stays valid for the next split
// point.
func matchSegments(segments []Segment, components []string, binds []binding, foldCase bool) ([]binding, bool) {
	for si := range segments {
		seg := &segments[si]

		if seg.Kind == KindMultiWildcard {
			tail := segments[si+1:]

			if len(tail) == 0 {
				// Terminal '**': everything left belongs to the wildcard,
				// and there must be something left.
				if len(components) == 0 {
					return nil, false
				}
				return binds, true
			}

			// Every remaining segment, nested '**' included, needs at least
			// one component.
			minTail := len(tail)

			// k is how many components this '**' consumes (always >= 1).
			for k := 1; len(components)-k >= minTail; k++ {
				if out, ok := matchSegments(tail, components[k:], binds, foldCase); ok {
					return out, true
				}
			}

			return nil, false
		}

		// All other kinds require a component to exist.
		if len(components) == 0 {
			return nil, false
		}
		component := components[0]

		switch seg.Kind {
		case KindLiteral:
			if !seg.Matches(component, foldCase) {
				return nil, false
			}
		case KindVariable:
			if !seg.Matches(component, false) {
				return nil, false
			}
			binds = append(binds, binding{name: seg.Name, value: component})
		case KindWildcard:
			// Consumes exactly one component unconditionally.
		}

		components = components[1:]
	}

	// Both cursors must be fully consumed.
	if len(components) != 0 {
		return nil, false
	}

	return binds, true
}
