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

package common

import "strings"

// TypeID is the stable textual identifier of a type or of a concrete
// argument signature, e.g. `Int`, `List<Int>`, or `(circle,Tuple,Float)`.
//
// TypeIDs are stable for the lifetime of the process and are used as
// dispatch-cache keys: two types have the same TypeID if and only if
// they are the same instantiation of the same type family.
type TypeID string

// NewTypeID returns the TypeID of an instantiation of the type family
// with the given name. An instantiation without type arguments is
// identified by the bare family name.
func NewTypeID(name string, typeArguments []TypeID) TypeID {
	if len(typeArguments) == 0 {
		return TypeID(name)
	}

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('<')
	for i, typeArgument := range typeArguments {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(string(typeArgument))
	}
	sb.WriteByte('>')
	return TypeID(sb.String())
}

// NewSignatureID returns the TypeID of an ordered sequence of types,
// e.g. the concrete argument signature of a call site.
func NewSignatureID(positions []TypeID) TypeID {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, position := range positions {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(string(position))
	}
	sb.WriteByte(')')
	return TypeID(sb.String())
}
