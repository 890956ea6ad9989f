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

// MethodEntry is one method: an applicability pattern, a specificity rank
// relative to the sibling entries present at definition time, and the
// opaque callable handle executing the method body.
//
// Entries are immutable after construction and owned exclusively by the
// method table they were defined on. They are never physically removed:
// a redefinition appends a newer entry and lets the generation counter
// retire cached references to the older one.
type MethodEntry struct {
	fn      HostFunction
	pattern types.Pattern
	index   int
	rank    int
}

func (e *MethodEntry) Pattern() types.Pattern {
	return e.pattern
}

// Index is the entry's insertion position in its table.
// Insertion order is not a correctness requirement,
// but is preserved for ambiguity diagnostics.
func (e *MethodEntry) Index() int {
	return e.index
}

// Rank is the number of sibling entries the entry was strictly more
// specific than at the time it was defined. It is a diagnostic measure;
// selection always uses the pairwise specificity order.
func (e *MethodEntry) Rank() int {
	return e.rank
}

// Invoke executes the method body. The result is returned as-is:
// the engine neither wraps nor inspects it.
func (e *MethodEntry) Invoke(invocation Invocation) (values.Value, error) {
	return e.fn(invocation)
}

func (e *MethodEntry) String() string {
	return e.pattern.String()
}
