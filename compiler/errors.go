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

import "errors"

// ErrInvalidPattern is the root of all compile-time pattern errors.
// Every error returned by Compile wraps this sentinel, so callers can
// distinguish "the pattern itself is broken" from any other failure with
// a single errors.Is check.
var ErrInvalidPattern = errors.New("invalid pattern")

var (
	// ErrEmptyPattern indicates that the pattern is empty after trimming whitespace.
	ErrEmptyPattern = errors.New("pattern is empty")

	// ErrMissingLeadingSlash indicates that the pattern does not start with '/'.
	ErrMissingLeadingSlash = errors.New("pattern must start with '/'")

	// ErrDoubledSlash indicates that the pattern contains "//".
	ErrDoubledSlash = errors.New("pattern contains doubled '/'")

	// ErrUnbalancedBraces indicates unmatched or nested variable braces.
	ErrUnbalancedBraces = errors.New("unbalanced variable braces")

	// ErrInvalidVariableName indicates an empty variable name or one that is
	// not of the form [A-Za-z_][A-Za-z0-9_]*.
	ErrInvalidVariableName = errors.New("invalid variable name")

	// ErrInvalidConstraint indicates that an embedded variable constraint does
	// not compile as a regular expression.
	ErrInvalidConstraint = errors.New("invalid variable constraint")

	// ErrTooManySegments indicates that the pattern exceeds the configured
	// segment ceiling (Config.MaxSegments).
	ErrTooManySegments = errors.New("pattern exceeds segment limit")
)
