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
	"regexp"
	"strings"
)

// SegmentKind identifies one of the four segment variants. The set is closed:
// the matcher switches exhaustively over these values and treats anything else
// as a programming error.
type SegmentKind uint8

const (
	// KindLiteral matches only an exact (optionally case-folded) string.
	KindLiteral SegmentKind = iota

	// KindVariable matches any non-empty component (or one satisfying its
	// constraint) and binds the component to the variable name.
	KindVariable

	// KindWildcard ("*") matches exactly one path component.
	KindWildcard

	// KindMultiWildcard ("**") matches one or more path components.
	KindMultiWildcard
)

// String returns a human-readable name for the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindVariable:
		return "variable"
	case KindWildcard:
		return "wildcard"
	case KindMultiWildcard:
		return "multi-wildcard"
	default:
		return "unknown"
	}
}

// Segment is one '/'-delimited component of a compiled pattern.
//
// Segments are immutable once constructed and carry no mutable state, so a
// single Segment (and the Pattern holding it) is safe to share across
// concurrent matchers without synchronization.
type Segment struct {
	// Kind selects the variant. The remaining fields are meaningful only for
	// the kinds noted on each field.
	Kind SegmentKind

	// Value is the literal text to compare against (KindLiteral only),
	// with escape backslashes already removed.
	Value string

	// Name is the variable name to bind (KindVariable only).
	Name string

	// Constraint is the compiled full-match constraint for a constrained
	// variable, nil for an unconstrained one (KindVariable only).
	// Compiled once at pattern-compile time, never per match.
	Constraint *regexp.Regexp

	// ConstraintExpr is the constraint source text as written in the pattern,
	// kept for introspection and error messages (KindVariable only).
	ConstraintExpr string
}

// Matches reports whether a single path component satisfies this segment.
// foldCase applies only to literal comparison; variable constraints are
// matched exactly as compiled.
//
// Multi-wildcard segments consume a variable number of components and are
// handled by the pattern walk, not here; for a single component they always
// accept, same as a plain wildcard.
func (s *Segment) Matches(component string, foldCase bool) bool {
	if component == "" {
		return false
	}

	switch s.Kind {
	case KindLiteral:
		if foldCase {
			return strings.EqualFold(s.Value, component)
		}
		return s.Value == component
	case KindVariable:
		if s.Constraint != nil {
			return s.Constraint.MatchString(component)
		}
		return true
	case KindWildcard, KindMultiWildcard:
		return true
	default:
		return false
	}
}

// String reconstructs the pattern text for this segment.
func (s *Segment) String() string {
	switch s.Kind {
	case KindLiteral:
		return Escape(s.Value)
	case KindVariable:
		if s.ConstraintExpr != "" {
			return "{" + s.Name + ":" + s.ConstraintExpr + "}"
		}
		return "{" + s.Name + "}"
	case KindWildcard:
		return "*"
	case KindMultiWildcard:
		return "**"
	default:
		return ""
	}
}
