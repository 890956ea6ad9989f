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

// Invocation is one resolved call, passed to the selected method's callable.
type Invocation struct {
	// Callee is the value the call was made on. It occupies position 0
	// of the signature, like any other argument.
	Callee values.Value
	// Arguments are the call's arguments, excluding the callee.
	Arguments []values.Value
	// Signature is the concrete argument signature the call was
	// resolved against: the callee's type followed by the argument types.
	Signature types.Signature
	// Engine is the engine that performed the dispatch.
	// Method bodies use it to make further calls.
	Engine *Engine
}

// HostFunction is an opaque callable handle: the executable body of one
// method. The runtime never inspects a handle beyond invoking it.
type HostFunction func(invocation Invocation) (values.Value, error)
