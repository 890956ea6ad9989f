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

	"github.com/bits-and-blooms/bitset"

	"github.com/veldt-lang/veldt/errors"
	"github.com/veldt-lang/veldt/types"
)

// MethodTable holds the methods of one type identity, in insertion order,
// plus the dispatch cache for call sites dispatching on that identity.
//
// Dispatch never blocks: the entry list is published as an immutable
// snapshot, and the cache tolerates concurrent writers (losing a cache
// race costs a redundant recomputation, never correctness, since every
// cached result is validated against the generation counter before use).
// Definitions on the same table serialize on a per-table mutex.
type MethodTable struct {
	identity  *types.Identity
	registry  *Registry
	entries   atomic.Pointer[[]*MethodEntry]
	intrinsic atomic.Pointer[MethodEntry]
	cache     sync.Map // signature key -> *cacheRecord
	defineMu  sync.Mutex
}

// cacheRecord is one memoized resolution, positive or negative,
// tagged with the generation it was computed at. A record whose
// generation does not equal the current generation is stale and
// must never be trusted.
type cacheRecord struct {
	entry      *MethodEntry
	err        error
	generation uint64
}

func newMethodTable(identity *types.Identity, registry *Registry) *MethodTable {
	return &MethodTable{
		identity: identity,
		registry: registry,
	}
}

func (t *MethodTable) Identity() *types.Identity {
	return t.identity
}

// Methods returns the table's entries in insertion order.
// Callers must not mutate the result.
func (t *MethodTable) Methods() []*MethodEntry {
	entries := t.entries.Load()
	if entries == nil {
		return nil
	}
	return *entries
}

// Define inserts a new method entry and bumps the global generation
// counter, logically invalidating every cached resolution in the table.
//
// Definition never fails due to ambiguity: an ambiguous overlap with an
// existing entry is only reported at the first dispatch that actually
// hits it.
func (t *MethodTable) Define(pattern types.Pattern, fn HostFunction) *MethodEntry {
	t.defineMu.Lock()
	defer t.defineMu.Unlock()

	if t.intrinsic.Load() != nil {
		panic(&IntrinsicRedefinitionError{
			Identity: t.identity,
		})
	}

	existing := t.Methods()

	rank := 0
	for _, entry := range existing {
		if types.IsMoreSpecific(pattern, entry.pattern) {
			rank++
		}
	}

	entry := &MethodEntry{
		pattern: pattern,
		fn:      fn,
		index:   len(existing),
		rank:    rank,
	}

	// Insert-then-publish: concurrent readers see either the old
	// snapshot or the new one, never a partially constructed list
	entries := make([]*MethodEntry, len(existing)+1)
	copy(entries, existing)
	entries[len(existing)] = entry
	t.entries.Store(&entries)

	// The generation bump must follow the publish: a dispatch that
	// observes the new generation is then guaranteed to also observe
	// the new entry list
	t.registry.generation.Add(1)

	return entry
}

// defineIntrinsic installs the single catch-all entry of an intrinsic
// table. Intrinsic tables hold exactly one entry and are never extended.
func (t *MethodTable) defineIntrinsic(pattern types.Pattern, fn HostFunction) *MethodEntry {
	t.defineMu.Lock()
	defer t.defineMu.Unlock()

	if t.intrinsic.Load() != nil || len(t.Methods()) > 0 {
		panic(errors.NewUnreachableError())
	}

	entry := &MethodEntry{
		pattern: pattern,
		fn:      fn,
	}

	entries := []*MethodEntry{entry}
	t.entries.Store(&entries)
	t.intrinsic.Store(entry)

	t.registry.generation.Add(1)

	return entry
}

// IntrinsicEntry returns the table's catch-all entry, if the table
// belongs to an intrinsic. Dispatch short-circuits the specificity
// search for intrinsics: there is nothing to disambiguate.
func (t *MethodTable) IntrinsicEntry() *MethodEntry {
	return t.intrinsic.Load()
}

// Lookup performs a full search: filter the entries down to the ones
// applicable to the concrete signature, then select the unique most
// specific one.
func (t *MethodTable) Lookup(signature types.Signature) (*MethodEntry, error) {
	entries := t.Methods()

	applicable := bitset.New(uint(len(entries)))
	for i, entry := range entries {
		if entry.pattern.IsApplicable(signature) {
			applicable.Set(uint(i))
		}
	}

	if applicable.None() {
		return nil, &NoMethodError{
			Identity:  t.identity,
			Signature: signature,
			Methods:   entries,
		}
	}

	// An applicable entry is selected if no other applicable entry is
	// strictly more specific. A later entry with an equal pattern shadows
	// an earlier one: redefinition appends, it never edits in place.
	// With more than one maximal entry, none strictly dominates the
	// others: the call is ambiguous.
	var maximal []*MethodEntry
	for i, ok := applicable.NextSet(0); ok; i, ok = applicable.NextSet(i + 1) {
		dominated := false
		for j, ok2 := applicable.NextSet(0); ok2; j, ok2 = applicable.NextSet(j + 1) {
			if i == j {
				continue
			}
			if types.IsMoreSpecific(entries[j].pattern, entries[i].pattern) ||
				(j > i && entries[j].pattern.Equal(entries[i].pattern)) {
				dominated = true
				break
			}
		}
		if !dominated {
			maximal = append(maximal, entries[i])
		}
	}

	if len(maximal) == 1 {
		return maximal[0], nil
	}

	return nil, &AmbiguousMethodError{
		Identity:   t.identity,
		Signature:  signature,
		Candidates: maximal,
	}
}

// CachedLookup resolves through the dispatch cache, falling back to a
// full search on a miss or a stale record. Failures are memoized too,
// so repeated futile searches are avoided.
func (t *MethodTable) CachedLookup(signature types.Signature) (*MethodEntry, error) {
	entry, err, _ := t.cachedLookup(signature)
	return entry, err
}

func (t *MethodTable) cachedLookup(signature types.Signature) (*MethodEntry, error, bool) {
	key := signature.Key()

	// The generation is read before the search: if a definition lands
	// mid-search, the record is stored already stale and the next
	// dispatch recomputes
	currentGeneration := t.registry.Generation()

	if cached, ok := t.cache.Load(key); ok {
		record := cached.(*cacheRecord)
		if record.generation == currentGeneration {
			return record.entry, record.err, true
		}
	}

	entry, err := t.Lookup(signature)

	t.cache.Store(key, &cacheRecord{
		entry:      entry,
		err:        err,
		generation: currentGeneration,
	})

	return entry, err, false
}

// CacheSize returns the number of memoized resolutions, stale ones
// included. Introspection only.
func (t *MethodTable) CacheSize() int {
	size := 0
	t.cache.Range(func(_, _ any) bool {
		size++
		return true
	})
	return size
}
