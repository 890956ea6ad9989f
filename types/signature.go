/*
 * Veldt - a dynamically typed programming language with multiple dispatch
 *
 * Copyright Veldt Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"strings"

	"github.com/veldt-lang/veldt/common"
)

// Signature is the ordered tuple of concrete argument types at a call site.
//
// Position 0 is the type of the callee itself: the callee can carry type
// parameters that affect applicability, so it dispatches like any other
// argument.
//
// A Signature's length is fixed once constructed, and equality is structural.
type Signature []*Type

// ID returns the signature's stable identifier, used as a dispatch-cache key.
func (s Signature) ID() common.TypeID {
	positionIDs := make([]common.TypeID, len(s))
	for i, t := range s {
		positionIDs[i] = t.ID()
	}
	return common.NewSignatureID(positionIDs)
}

// Key returns a process-unique cache key for the signature.
// Unlike ID, it is built from identity ids rather than display names,
// so two distinct families that share a display name cannot collide.
func (s Signature) Key() string {
	var sb strings.Builder
	for i, t := range s {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(t.key)
	}
	return sb.String()
}

func (s Signature) Equal(other Signature) bool {
	return common.EqualSlices(s, other)
}

func (s Signature) String() string {
	return string(s.ID())
}

// Pattern is a method's declared applicability pattern:
// one type constraint per argument position (position 0 constrains the
// callee), with an optional variadic tail.
//
// If the pattern is variadic, the last constraint binds zero or more
// trailing arguments, so `(f, Any...)` accepts any number of arguments
// of any type after the callee.
type Pattern struct {
	constraints []*Type
	variadic    bool
}

var _ common.Equatable[Pattern] = Pattern{}

// NewPattern returns a fixed-arity pattern with the given constraints.
func NewPattern(constraints ...*Type) Pattern {
	return Pattern{
		constraints: constraints,
	}
}

// NewVariadicPattern returns a pattern whose last constraint binds
// zero or more trailing arguments. At least the tail constraint
// must be given.
func NewVariadicPattern(constraints ...*Type) Pattern {
	if len(constraints) == 0 {
		panic(&MissingVariadicConstraintError{})
	}
	return Pattern{
		constraints: constraints,
		variadic:    true,
	}
}

// Constraints returns the pattern's position constraints.
// Callers must not mutate the result.
func (p Pattern) Constraints() []*Type {
	return p.constraints
}

func (p Pattern) IsVariadic() bool {
	return p.variadic
}

// MinArity returns the smallest signature length the pattern can match.
func (p Pattern) MinArity() int {
	if p.variadic {
		return len(p.constraints) - 1
	}
	return len(p.constraints)
}

// constraintAt returns the constraint for the given argument position,
// repeating the variadic tail beyond the declared positions.
func (p Pattern) constraintAt(position int) *Type {
	if position < len(p.constraints) {
		return p.constraints[position]
	}
	return p.constraints[len(p.constraints)-1]
}

// IsApplicable returns true if every position of the concrete signature
// is a subtype of the pattern's constraint at that position.
func (p Pattern) IsApplicable(signature Signature) bool {
	if p.variadic {
		if len(signature) < p.MinArity() {
			return false
		}
	} else if len(signature) != len(p.constraints) {
		return false
	}

	for i, argumentType := range signature {
		if !IsSubType(argumentType, p.constraintAt(i)) {
			return false
		}
	}
	return true
}

func (p Pattern) Equal(other Pattern) bool {
	return p.variadic == other.variadic &&
		common.EqualSlices(p.constraints, other.constraints)
}

func (p Pattern) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, constraint := range p.constraints {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(constraint.String())
	}
	if p.variadic {
		sb.WriteString("...")
	}
	sb.WriteByte(')')
	return sb.String()
}

// IsMoreSpecific reports whether pattern a is strictly more specific than
// pattern b: every signature a matches is also matched by b, and b matches
// at least one signature a does not. It is a strict partial order: patterns
// with disjoint or incomparable applicability are not ordered.
func IsMoreSpecific(a, b Pattern) bool {
	switch {
	case !a.variadic && !b.variadic:
		// Fixed arity on both sides: must agree on length,
		// be position-wise subtypes, and strictly so somewhere
		if len(a.constraints) != len(b.constraints) {
			return false
		}
		strict := false
		for i, constraint := range a.constraints {
			other := b.constraints[i]
			if !IsSubType(constraint, other) {
				return false
			}
			if !constraint.Equal(other) {
				strict = true
			}
		}
		return strict

	case !a.variadic && b.variadic:
		// A fixed pattern dominated position-wise by a variadic one is
		// strictly more specific: the variadic pattern also matches other
		// arities
		if len(a.constraints) < b.MinArity() {
			return false
		}
		for i, constraint := range a.constraints {
			if !IsSubType(constraint, b.constraintAt(i)) {
				return false
			}
		}
		return true

	case a.variadic && !b.variadic:
		// A variadic pattern matches arities a fixed one cannot
		return false

	default:
		// Both variadic: a must not admit shorter signatures than b,
		// and must be a position-wise subtype over the longer prefix,
		// tail included
		if a.MinArity() < b.MinArity() {
			return false
		}
		positions := len(a.constraints)
		if len(b.constraints) > positions {
			positions = len(b.constraints)
		}
		strict := a.MinArity() > b.MinArity()
		for i := 0; i < positions; i++ {
			constraint := a.constraintAt(i)
			other := b.constraintAt(i)
			if !IsSubType(constraint, other) {
				return false
			}
			if !constraint.Equal(other) {
				strict = true
			}
		}
		return strict
	}
}
