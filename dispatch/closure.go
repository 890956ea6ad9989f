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

package dispatch

import (
	"github.com/veldt-lang/veldt/errors"
	"github.com/veldt-lang/veldt/types"
	"github.com/veldt-lang/veldt/values"
)

// ClosureType is the synthesized nominal type of one closure expression:
// one field per captured variable, and a method table holding exactly one
// entry, the closure body, with the callee position bound to any instance
// of the type.
//
// A ClosureType is created once per distinct capturing expression and
// reused across evaluations; each evaluation instantiates a fresh value
// carrying the captured values of that evaluation.
type ClosureType struct {
	identity   *types.Identity
	staticType *types.Type
	fieldNames []string
}

// NewClosureType synthesizes the record type for a closure expression and
// registers the closure body on the type's method table. Calling a closure
// is thereafter ordinary dispatch: the engine needs no awareness that a
// callee is a closure.
func (r *Registry) NewClosureType(
	name string,
	captures []string,
	body HostFunction,
	parameterTypes ...*types.Type,
) *ClosureType {
	identity := types.NewIdentity(name, 0, nil)
	staticType := types.NewType(identity)

	constraints := make([]*types.Type, len(parameterTypes)+1)
	constraints[0] = staticType
	copy(constraints[1:], parameterTypes)

	r.Table(identity).Define(types.NewPattern(constraints...), body)

	return &ClosureType{
		identity:   identity,
		staticType: staticType,
		fieldNames: captures,
	}
}

func (c *ClosureType) Identity() *types.Identity {
	return c.identity
}

func (c *ClosureType) Type() *types.Type {
	return c.staticType
}

// Instantiate creates one evaluation's instance,
// populated with the current captured values.
func (c *ClosureType) Instantiate(captured ...values.Value) *values.ClosureValue {
	// The front end guarantees the capture list is fixed per expression
	if len(captured) != len(c.fieldNames) {
		panic(errors.NewUnreachableError())
	}
	return values.NewClosureValue(c.staticType, c.fieldNames, captured)
}
