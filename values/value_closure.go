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

// ClosureValue

// ClosureValue is one evaluation of a closure expression: an instance of
// the expression's closure record type, carrying the captured values as
// named fields. Calling a closure is ordinary dispatch on the instance's
// type; the value itself carries no behavior.
type ClosureValue struct {
	staticType *types.Type
	fields     map[string]Value
	fieldNames []string
}

var _ Value = &ClosureValue{}

func NewClosureValue(staticType *types.Type, fieldNames []string, fieldValues []Value) *ClosureValue {
	fields := make(map[string]Value, len(fieldNames))
	for i, name := range fieldNames {
		fields[name] = fieldValues[i]
	}
	return &ClosureValue{
		staticType: staticType,
		fields:     fields,
		fieldNames: fieldNames,
	}
}

func (*ClosureValue) IsValue() {}

func (v *ClosureValue) StaticType() *types.Type {
	return v.staticType
}

// Field returns the captured value with the given name.
func (v *ClosureValue) Field(name string) (Value, bool) {
	value, ok := v.fields[name]
	return value, ok
}

func (v *ClosureValue) String() string {
	var sb strings.Builder
	sb.WriteString(v.staticType.String())
	sb.WriteByte('{')
	for i, name := range v.fieldNames {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(v.fields[name].String())
	}
	sb.WriteByte('}')
	return sb.String()
}
