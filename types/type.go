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
	"strconv"
	"strings"

	"github.com/veldt-lang/veldt/common"
)

// Type is one instantiation of a type family,
// e.g. `Int`, `List<Int>`, or the abstract `Number`.
//
// Types are immutable after construction.
type Type struct {
	identity      *Identity
	typeArguments []*Type
	typeID        common.TypeID
	key           string
}

var _ common.Equatable[*Type] = &Type{}

// anyIdentity is the identity of the explicit top type.
// It is a sentinel rather than an absence of a constraint,
// so applicability and specificity have a single code path.
var anyIdentity = &Identity{
	id:       identityIDs.Add(1),
	name:     "Any",
	abstract: true,
}

// AnyType is the top of the type lattice: every type is a subtype of Any.
// It only appears in applicability patterns, never as the type of a value.
var AnyType = &Type{
	identity: anyIdentity,
	typeID:   common.TypeID(anyIdentity.name),
	key:      strconv.FormatUint(anyIdentity.id, 10),
}

// NewType instantiates the given type family.
// The number of type arguments must match the family's arity.
func NewType(identity *Identity, typeArguments ...*Type) *Type {
	if len(typeArguments) != identity.typeParameterCount {
		panic(&InvalidTypeArgumentCountError{
			Identity:      identity,
			ExpectedCount: identity.typeParameterCount,
			ActualCount:   len(typeArguments),
		})
	}

	argumentIDs := make([]common.TypeID, len(typeArguments))
	for i, typeArgument := range typeArguments {
		argumentIDs[i] = typeArgument.typeID
	}

	var key strings.Builder
	key.WriteString(strconv.FormatUint(identity.id, 10))
	for _, typeArgument := range typeArguments {
		key.WriteByte('<')
		key.WriteString(typeArgument.key)
	}

	return &Type{
		identity:      identity,
		typeArguments: typeArguments,
		typeID:        common.NewTypeID(identity.name, argumentIDs),
		key:           key.String(),
	}
}

func (t *Type) Identity() *Identity {
	return t.identity
}

// TypeArguments returns the instantiation's type arguments.
// Callers must not mutate the result.
func (t *Type) TypeArguments() []*Type {
	return t.typeArguments
}

func (t *Type) ID() common.TypeID {
	return t.typeID
}

func (t *Type) IsAny() bool {
	return t.identity == anyIdentity
}

func (t *Type) String() string {
	return string(t.typeID)
}

func (t *Type) Equal(other *Type) bool {
	return t.key == other.key
}

// IsSubType returns true if subType is a subtype of superType.
//
// The lattice is nominal: a type is a subtype of Any, of itself,
// of any instantiation of the same family whose type arguments are
// position-wise supertypes, and of every abstract identity on its
// supertype chain.
func IsSubType(subType, superType *Type) bool {
	if superType.IsAny() {
		return true
	}
	if subType.IsAny() {
		return false
	}

	if subType.identity == superType.identity {
		// Same family: arity is fixed per identity,
		// so the argument lists have equal length
		for i, subArgument := range subType.typeArguments {
			if !IsSubType(subArgument, superType.typeArguments[i]) {
				return false
			}
		}
		return true
	}

	// Abstract supertypes are unparameterized,
	// so reaching the identity is sufficient
	for identity := subType.identity.supertype; identity != nil; identity = identity.supertype {
		if identity == superType.identity {
			return true
		}
	}

	return false
}

// IsStrictSubType returns true if subType is a subtype of superType
// and the two types are not equal.
func IsStrictSubType(subType, superType *Type) bool {
	return !subType.Equal(superType) &&
		IsSubType(subType, superType)
}
