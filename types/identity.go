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
	"sync/atomic"
)

// Identity is the stable identity of one type family.
//
// All instantiations of the same parametric family share one Identity,
// e.g. every `List<T>` has the Identity of `List`.
//
// Identities are created once, when the family is declared,
// and are stable for the lifetime of the process.
type Identity struct {
	supertype          *Identity
	name               string
	id                 uint64
	typeParameterCount int
	abstract           bool
}

var identityIDs atomic.Uint64

// NewIdentity declares a new concrete type family with the given number of
// type parameters. The optional supertype must be an abstract identity.
func NewIdentity(name string, typeParameterCount int, supertype *Identity) *Identity {
	if supertype != nil && !supertype.abstract {
		panic(&NonAbstractSupertypeError{
			Name:      name,
			Supertype: supertype,
		})
	}

	return &Identity{
		id:                 identityIDs.Add(1),
		name:               name,
		typeParameterCount: typeParameterCount,
		supertype:          supertype,
		abstract:           false,
	}
}

// NewAbstractIdentity declares a new abstract type family,
// usable as a supertype and in applicability patterns,
// but never as the type of a value.
//
// Abstract identities are unparameterized.
func NewAbstractIdentity(name string, supertype *Identity) *Identity {
	if supertype != nil && !supertype.abstract {
		panic(&NonAbstractSupertypeError{
			Name:      name,
			Supertype: supertype,
		})
	}

	return &Identity{
		id:        identityIDs.Add(1),
		name:      name,
		supertype: supertype,
		abstract:  true,
	}
}

func (i *Identity) ID() uint64 {
	return i.id
}

func (i *Identity) Name() string {
	return i.name
}

func (i *Identity) TypeParameterCount() int {
	return i.typeParameterCount
}

// Supertype returns the abstract supertype of the family,
// or nil if the family is only a subtype of Any.
func (i *Identity) Supertype() *Identity {
	return i.supertype
}

func (i *Identity) IsAbstract() bool {
	return i.abstract
}
