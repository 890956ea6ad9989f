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
	"strconv"
	"strings"

	"github.com/veldt-lang/veldt/types"
)

// BoolValue

type BoolValue bool

var _ Value = BoolValue(false)

const TrueValue = BoolValue(true)
const FalseValue = BoolValue(false)

func (BoolValue) IsValue() {}

func (BoolValue) StaticType() *types.Type {
	return BoolType
}

func (v BoolValue) String() string {
	return strconv.FormatBool(bool(v))
}

// StringValue

type StringValue string

var _ Value = StringValue("")

func NewStringValue(value string) StringValue {
	return StringValue(value)
}

func (StringValue) IsValue() {}

func (StringValue) StaticType() *types.Type {
	return StringType
}

func (v StringValue) String() string {
	return strconv.Quote(string(v))
}

// VoidValue

type VoidValue struct{}

var _ Value = VoidValue{}

var Void Value = VoidValue{}

func (VoidValue) IsValue() {}

func (VoidValue) StaticType() *types.Type {
	return VoidType
}

func (VoidValue) String() string {
	return "()"
}

// TupleValue

type TupleValue struct {
	Elements []Value
}

var _ Value = &TupleValue{}

func NewTupleValue(elements ...Value) *TupleValue {
	return &TupleValue{Elements: elements}
}

func (*TupleValue) IsValue() {}

func (*TupleValue) StaticType() *types.Type {
	return TupleType
}

func (v *TupleValue) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, element := range v.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(element.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
