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
	"sync"
	"sync/atomic"

	"github.com/veldt-lang/veldt/types"
)

// Registry is the process-wide mapping from type identity to method table,
// and the home of the global generation counter.
//
// All method mutation funnels through the tables handed out here,
// so the generation invariant is centrally enforced: the counter is
// incremented exactly once per successful definition, and the increment
// is visible to all threads before the definition returns.
type Registry struct {
	tables         map[uint64]*MethodTable
	keywordSorters map[uint64]*KeywordSorter
	generation     atomic.Uint64
	mu             sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		tables:         map[uint64]*MethodTable{},
		keywordSorters: map[uint64]*KeywordSorter{},
	}
}

// Generation returns the current value of the global generation counter.
func (r *Registry) Generation() uint64 {
	return r.generation.Load()
}

// Table returns the method table owned by the given identity,
// creating an empty one on first use. A dispatch against a table
// that never had a method defined fails with NoMethodError.
func (r *Registry) Table(identity *types.Identity) *MethodTable {
	r.mu.RLock()
	table, ok := r.tables[identity.ID()]
	r.mu.RUnlock()
	if ok {
		return table
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok = r.tables[identity.ID()]
	if !ok {
		table = newMethodTable(identity, r)
		r.tables[identity.ID()] = table
	}
	return table
}

// DefineMethod registers a new method for the given identity.
// The pattern constrains the full signature, callee position included.
//
// An ambiguity the new method introduces is not an error here:
// it surfaces as an AmbiguousMethodError at the first dispatch
// that actually hits it.
func (r *Registry) DefineMethod(
	identity *types.Identity,
	pattern types.Pattern,
	fn HostFunction,
) *MethodEntry {
	return r.Table(identity).Define(pattern, fn)
}
