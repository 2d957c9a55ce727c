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

// Per-segment specificity weights. Literal segments dominate, constrained
// variables beat unconstrained ones, and the wildcard kinds rank lowest so a
// pattern built from exact text always outranks a more permissive one of the
// same shape.
const (
	weightLiteral             = 100
	weightConstrainedVariable = 60
	weightVariable            = 50
	weightWildcard            = 10
	weightMultiWildcard       = 1
)

// specificity computes the weighted-sum specificity rank of a segment
// sequence. The rank is a pure function of the segments: two patterns with
// identical segment sequences always receive the same rank, which makes it
// usable as a total-order component when selecting the best of several
// candidate matches.
func specificity(segments []Segment) int {
	rank := 0
	for i := range segments {
		switch segments[i].Kind {
		case KindLiteral:
			rank += weightLiteral
		case KindVariable:
			if segments[i].Constraint != nil {
				rank += weightConstrainedVariable
			} else {
				rank += weightVariable
			}
		case KindWildcard:
			rank += weightWildcard
		case KindMultiWildcard:
			rank += weightMultiWildcard
		}
	}

	return rank
}
