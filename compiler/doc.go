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

// Package compiler turns path-pattern strings into immutable, matchable
// Patterns for the pathmatch matcher.
//
// A pattern string such as "/api/users/{id}" or "/static/**/app.js" is
// compiled once into a Pattern: an ordered sequence of tagged Segments plus
// metadata (static flag, wildcard flags, specificity rank) derived at compile
// time so no per-request analysis is needed.
//
// # Pattern Grammar
//
// '/' is the separator and required leading character. A segment is one of:
//
//	literal          exact text, compared by (optionally case-folded) equality
//	*                exactly one path component
//	**               one or more path components
//	{name}           variable, binds the component to name
//	{name:regexp}    variable constrained by an anchored regular expression
//
// Literal text containing '\', '{', '}' or '*' is embedded via Escape.
//
// # Segment Variants
//
// The four segment kinds form a closed sum (SegmentKind); the matcher
// switches exhaustively over them rather than type-asserting, so adding a
// kind is a compile-visible change.
//
// # Compilation
//
//  1. Normalize (trim whitespace) and consult the LRU pattern cache.
//  2. Validate structure: leading '/', no doubled '/', balanced braces,
//     variable-name charset, constraint compiles, segment ceiling.
//  3. Split on '/' and classify each segment.
//  4. Derive isStatic / hasWildcard / hasVariables in one scan and compute
//     the specificity rank as a weighted per-segment sum.
//
// Constraints compile exactly once, at pattern-compile time, and live on the
// Segment; matching never recompiles a regular expression.
//
// # Specificity
//
// Each segment contributes a weight (literal > constrained variable >
// variable > '*' > '**'); the sum gives a deterministic total-order component
// used to rank candidate patterns from most to least specific.
//
// # Errors
//
// All compile failures wrap ErrInvalidPattern together with a
// condition-specific sentinel, so both coarse and precise errors.Is checks
// work. Matching never produces errors: a non-match is an ordinary outcome,
// reported by the matcher as an unmatched result.
//
// # Thread Safety
//
// Compile is safe for concurrent use; the pattern cache is a synchronized
// LRU. Pattern and Segment are immutable after construction and may be
// shared freely.
package compiler
