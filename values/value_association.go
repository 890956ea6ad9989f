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
	"strings"

	"github.com/veldt-lang/veldt/types"
)

// AssociationValue

// AssociationValue is an ordered sequence of name/value pairs.
// It is the canonical container for keyword arguments: keyword sorter
// functions take an association as their first argument, and unrecognized
// keywords are collected into a new association in their original order.
type AssociationValue struct {
	Pairs []AssociationPair
}

type AssociationPair struct {
	Name  string
	Value Value
}

var _ Value = &AssociationValue{}

func NewAssociationValue(pairs ...AssociationPair) *AssociationValue {
	return &AssociationValue{Pairs: pairs}
}

func (*AssociationValue) IsValue() {}

func (*AssociationValue) StaticType() *types.Type {
	return AssociationType
}

// Get returns the value bound to the first pair with the given name.
func (v *AssociationValue) Get(name string) (Value, bool) {
	for _, pair := range v.Pairs {
		if pair.Name == name {
			return pair.Value, true
		}
	}
	return nil, false
}

func (v *AssociationValue) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, pair := range v.Pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pair.Name)
		sb.WriteString(" = ")
		sb.WriteString(pair.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
