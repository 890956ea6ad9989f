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

// ListValue

// ListValue is a homogeneous list. All instantiations of List share one
// type identity; the element type is a type argument, so `List<Int>` and
// `List<Any>` patterns order by specificity like any other types.
type ListValue struct {
	staticType *types.Type
	Elements   []Value
}

var _ Value = &ListValue{}

func NewListValue(elementType *types.Type, elements ...Value) *ListValue {
	return &ListValue{
		staticType: NewListType(elementType),
		Elements:   elements,
	}
}

func (*ListValue) IsValue() {}

func (v *ListValue) StaticType() *types.Type {
	return v.staticType
}

func (v *ListValue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, element := range v.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(element.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
