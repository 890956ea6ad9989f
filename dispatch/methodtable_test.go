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

package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-lang/veldt/dispatch"
	"github.com/veldt-lang/veldt/types"
	"github.com/veldt-lang/veldt/values"
)

func constantMethod(result string) dispatch.HostFunction {
	return func(_ dispatch.Invocation) (values.Value, error) {
		return values.NewStringValue(result), nil
	}
}

func TestLookupSelectsMostSpecific(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	f := registry.NewGenericFunction("f")
	f.Define(constantMethod("int"), values.IntType, values.IntType)
	f.Define(constantMethod("number"), values.NumberType, values.NumberType)

	// (Int, Int) is concrete (Int, Int): the (Int, Int) entry is strictly
	// more specific than (Number, Number) and must win
	result, err := engine.Call(f.Value, values.NewIntValue(1), values.NewIntValue(2))
	require.NoError(t, err)
	assert.Equal(t, values.NewStringValue("int"), result)

	// (Float, Int) only matches (Number, Number)
	result, err = engine.Call(f.Value, values.NewFloatValue(1), values.NewIntValue(2))
	require.NoError(t, err)
	assert.Equal(t, values.NewStringValue("number"), result)
}

func TestLookupAmbiguity(t *testing.T) {

	t.Parallel()

	test := func(t *testing.T, reversed bool) {
		registry := dispatch.NewRegistry()
		engine := dispatch.NewEngine(registry, nil)

		f := registry.NewGenericFunction("f")

		patterns := [][]*types.Type{
			{values.Int8Type, types.AnyType},
			{types.AnyType, values.Int8Type},
		}
		if reversed {
			patterns[0], patterns[1] = patterns[1], patterns[0]
		}
		f.Define(constantMethod("first"), patterns[0]...)
		f.Define(constantMethod("second"), patterns[1]...)

		// Both entries are applicable and neither dominates
		_, err := engine.Call(
			f.Value,
			values.NewInt8Value(1),
			values.NewInt8Value(2),
		)
		var ambiguousErr *dispatch.AmbiguousMethodError
		require.ErrorAs(t, err, &ambiguousErr)
		assert.Len(t, ambiguousErr.Candidates, 2)

		// A strictly more specific third entry resolves the ambiguity
		f.Define(constantMethod("both"), values.Int8Type, values.Int8Type)

		result, err := engine.Call(
			f.Value,
			values.NewInt8Value(1),
			values.NewInt8Value(2),
		)
		require.NoError(t, err)
		assert.Equal(t, values.NewStringValue("both"), result)
	}

	// Ambiguity is symmetric in insertion order
	t.Run("declaration order", func(t *testing.T) {
		t.Parallel()
		test(t, false)
	})

	t.Run("reversed order", func(t *testing.T) {
		t.Parallel()
		test(t, true)
	})
}

func TestLookupNoMethod(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	f := registry.NewGenericFunction("f")

	// A call against an empty table always fails
	_, err := engine.Call(f.Value, values.NewIntValue(1))
	var noMethodErr *dispatch.NoMethodError
	require.ErrorAs(t, err, &noMethodErr)
	assert.Contains(t, noMethodErr.SecondaryError(), "has no methods")

	f.Define(constantMethod("int"), values.IntType, values.IntType)

	_, err = engine.Call(f.Value, values.NewIntValue(1), values.NewStringValue("x"))
	require.ErrorAs(t, err, &noMethodErr)
	assert.Contains(t, noMethodErr.SecondaryError(), "closest method pattern")
}

func TestDefinitionNeverFailsOnAmbiguity(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	f := registry.NewGenericFunction("f")

	// The overlap of these entries is ambiguous, but definition succeeds:
	// only a call actually hitting the overlap fails
	require.NotNil(t, f.Define(constantMethod("first"), values.Int8Type, types.AnyType))
	require.NotNil(t, f.Define(constantMethod("second"), types.AnyType, values.Int8Type))

	// A call outside the overlap works
	result, err := engine.Call(
		f.Value,
		values.NewInt8Value(1),
		values.NewIntValue(2),
	)
	require.NoError(t, err)
	assert.Equal(t, values.NewStringValue("first"), result)
}

func TestMonotonicGeneration(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()

	f := registry.NewGenericFunction("f")
	g := registry.NewGenericFunction("g")

	generation := registry.Generation()

	for i, function := range []*dispatch.GenericFunction{f, g, f} {
		function.Define(constantMethod("m"), values.IntType)

		newGeneration := registry.Generation()
		assert.Greater(t, newGeneration, generation, "definition %d", i)
		generation = newGeneration
	}
}

func TestRedefinitionShadowsOlderEntry(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	f := registry.NewGenericFunction("f")
	f.Define(constantMethod("old"), values.IntType)

	result, err := engine.Call(f.Value, values.NewIntValue(1))
	require.NoError(t, err)
	assert.Equal(t, values.NewStringValue("old"), result)

	// Redefinition appends; the older entry stays in the table
	// but is never selected again
	f.Define(constantMethod("new"), values.IntType)

	result, err = engine.Call(f.Value, values.NewIntValue(1))
	require.NoError(t, err)
	assert.Equal(t, values.NewStringValue("new"), result)

	assert.Len(t, f.Table().Methods(), 2)
}

func TestNegativeLookupIsMemoized(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	f := registry.NewGenericFunction("f")
	f.Define(constantMethod("int"), values.IntType)

	_, err := engine.Call(f.Value, values.NewStringValue("x"))
	var noMethodErr *dispatch.NoMethodError
	require.ErrorAs(t, err, &noMethodErr)

	// The failure is cached alongside positive resolutions
	assert.Equal(t, 1, f.Table().CacheSize())

	_, err = engine.Call(f.Value, values.NewStringValue("x"))
	require.ErrorAs(t, err, &noMethodErr)
	assert.Equal(t, 1, f.Table().CacheSize())

	// A new method invalidates the negative result
	f.Define(constantMethod("string"), values.StringType)

	result, err := engine.Call(f.Value, values.NewStringValue("x"))
	require.NoError(t, err)
	assert.Equal(t, values.NewStringValue("string"), result)
}

func TestDeterministicResolution(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()

	f := registry.NewGenericFunction("f")
	f.Define(constantMethod("int"), values.IntType, values.IntType)
	f.Define(constantMethod("number"), values.NumberType, values.NumberType)

	signature := types.Signature{f.Type(), values.IntType, values.IntType}

	first, err := f.Table().CachedLookup(signature)
	require.NoError(t, err)

	// For a fixed generation, resolution of the same concrete signature
	// always yields the same entry
	for i := 0; i < 10; i++ {
		entry, err := f.Table().CachedLookup(signature)
		require.NoError(t, err)
		assert.Same(t, first, entry)

		entry, err = f.Table().Lookup(signature)
		require.NoError(t, err)
		assert.Same(t, first, entry)
	}
}

func TestMethodRank(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()

	f := registry.NewGenericFunction("f")
	broad := f.Define(constantMethod("any"), types.AnyType)
	middle := f.Define(constantMethod("number"), values.NumberType)
	narrow := f.Define(constantMethod("int"), values.IntType)

	// Rank counts the siblings present at definition time
	// that the entry is strictly more specific than
	assert.Equal(t, 0, broad.Rank())
	assert.Equal(t, 1, middle.Rank())
	assert.Equal(t, 2, narrow.Rank())

	// Insertion order is preserved for diagnostics
	entries := f.Table().Methods()
	require.Len(t, entries, 3)
	assert.Equal(t, 0, entries[0].Index())
	assert.Equal(t, 2, entries[2].Index())
}
