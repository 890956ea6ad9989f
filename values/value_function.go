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

// FunctionValue

// FunctionValue is the singleton value of a generic function:
// the token a call site names as its callee. The function's methods live
// in the method table owned by the value's type identity;
// the value itself carries no behavior.
type FunctionValue struct {
	staticType *types.Type
	name       string
}

var _ Value = &FunctionValue{}

func NewFunctionValue(name string, staticType *types.Type) *FunctionValue {
	return &FunctionValue{
		name:       name,
		staticType: staticType,
	}
}

func (*FunctionValue) IsValue() {}

func (v *FunctionValue) StaticType() *types.Type {
	return v.staticType
}

func (v *FunctionValue) Name() string {
	return v.name
}

func (v *FunctionValue) String() string {
	return v.name
}
