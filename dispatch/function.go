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
	"github.com/veldt-lang/veldt/types"
	"github.com/veldt-lang/veldt/values"
)

// GenericFunction bundles the pieces a declared function consists of:
// a type identity, the singleton value call sites name as their callee,
// and the method table the identity owns.
type GenericFunction struct {
	Identity *types.Identity
	Value    *values.FunctionValue
	table    *MethodTable
}

// NewGenericFunction declares a new generic function with no methods.
func (r *Registry) NewGenericFunction(name string) *GenericFunction {
	identity := types.NewIdentity(name, 0, nil)

	return &GenericFunction{
		Identity: identity,
		Value:    values.NewFunctionValue(name, types.NewType(identity)),
		table:    r.Table(identity),
	}
}

// newGenericFunctionLocked is NewGenericFunction for callers
// already holding the registry lock.
func (r *Registry) newGenericFunctionLocked(name string) *GenericFunction {
	identity := types.NewIdentity(name, 0, nil)
	table := newMethodTable(identity, r)
	r.tables[identity.ID()] = table

	return &GenericFunction{
		Identity: identity,
		Value:    values.NewFunctionValue(name, types.NewType(identity)),
		table:    table,
	}
}

func (f *GenericFunction) Name() string {
	return f.Value.Name()
}

// Type returns the singleton callee type of the function.
func (f *GenericFunction) Type() *types.Type {
	return f.Value.StaticType()
}

func (f *GenericFunction) Table() *MethodTable {
	return f.table
}

// Define registers a method whose pattern constrains only the ordinary
// argument positions; the callee position is bound to the function's
// own type.
func (f *GenericFunction) Define(fn HostFunction, argumentTypes ...*types.Type) *MethodEntry {
	return f.table.Define(f.pattern(argumentTypes), fn)
}

func (f *GenericFunction) pattern(argumentTypes []*types.Type) types.Pattern {
	constraints := make([]*types.Type, len(argumentTypes)+1)
	constraints[0] = f.Type()
	copy(constraints[1:], argumentTypes)
	return types.NewPattern(constraints...)
}
