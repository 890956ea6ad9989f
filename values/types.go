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

package values

import (
	"github.com/veldt-lang/veldt/types"
)

// The standard type hierarchy.
//
// Number (abstract)
//   Integer (abstract)
//     Int, Int8
//   Float
var (
	NumberIdentity  = types.NewAbstractIdentity("Number", nil)
	IntegerIdentity = types.NewAbstractIdentity("Integer", NumberIdentity)

	IntIdentity   = types.NewIdentity("Int", 0, IntegerIdentity)
	Int8Identity  = types.NewIdentity("Int8", 0, IntegerIdentity)
	FloatIdentity = types.NewIdentity("Float", 0, NumberIdentity)

	BoolIdentity   = types.NewIdentity("Bool", 0, nil)
	StringIdentity = types.NewIdentity("String", 0, nil)
	VoidIdentity   = types.NewIdentity("Void", 0, nil)
	TupleIdentity  = types.NewIdentity("Tuple", 0, nil)

	// ListIdentity is the identity shared by all List instantiations
	ListIdentity = types.NewIdentity("List", 1, nil)

	// AssociationIdentity is the identity of the ordered name/value
	// sequence consumed by keyword sorter functions
	AssociationIdentity = types.NewIdentity("Association", 0, nil)
)

var (
	NumberType  = types.NewType(NumberIdentity)
	IntegerType = types.NewType(IntegerIdentity)

	IntType   = types.NewType(IntIdentity)
	Int8Type  = types.NewType(Int8Identity)
	FloatType = types.NewType(FloatIdentity)

	BoolType        = types.NewType(BoolIdentity)
	StringType      = types.NewType(StringIdentity)
	VoidType        = types.NewType(VoidIdentity)
	TupleType       = types.NewType(TupleIdentity)
	AssociationType = types.NewType(AssociationIdentity)
)

// NewListType returns the List instantiation for the given element type.
func NewListType(elementType *types.Type) *types.Type {
	return types.NewType(ListIdentity, elementType)
}
