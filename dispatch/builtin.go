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
)

// NewBuiltinFunction registers an intrinsic: a singleton callee type whose
// method table holds exactly one catch-all entry (any number of arguments
// of any type) invoking a native entry point.
//
// Dispatch for intrinsics short-circuits the specificity search, but still
// flows through the same Call contract, so the calling convention stays
// uniform across the whole runtime.
func (r *Registry) NewBuiltinFunction(name string, fn HostFunction) *GenericFunction {
	function := r.NewGenericFunction(name)

	function.table.defineIntrinsic(
		types.NewVariadicPattern(function.Type(), types.AnyType),
		fn,
	)

	return function
}
