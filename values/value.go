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

// Value is a runtime value.
//
// Every value has exactly one owning type, and that type's method table is
// consulted uniformly whether the value is a plain record, a closure,
// a generic function, or an intrinsic: there is no "is this callable?"
// distinction anywhere in the runtime.
type Value interface {
	IsValue()
	// StaticType returns the concrete type the value dispatches under.
	StaticType() *types.Type
	String() string
}
