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

// defineCircle registers
//
//	circle(center, radius; color = black, fill = true, options...)
//
// whose body reports its bound parameters as an association.
func defineCircle(registry *dispatch.Registry) *dispatch.GenericFunction {
	circle := registry.NewGenericFunction("circle")

	registry.DefineKeywordMethod(
		circle,
		dispatch.KeywordMethod{
			Keywords: []dispatch.KeywordParameter{
				{
					Name: "color",
					Default: func(_ *dispatch.KeywordScope) (values.Value, error) {
						return values.NewStringValue("black"), nil
					},
				},
				{
					Name: "fill",
					Default: func(_ *dispatch.KeywordScope) (values.Value, error) {
						return values.TrueValue, nil
					},
				},
			},
			CollectsRest:    true,
			PositionalTypes: []*types.Type{values.TupleType, values.FloatType},
			Body: func(invocation dispatch.Invocation) (values.Value, error) {
				// Canonical argument order:
				// keywords (declaration order), catch-all, positionals
				return values.NewAssociationValue(
					values.AssociationPair{Name: "color", Value: invocation.Arguments[0]},
					values.AssociationPair{Name: "fill", Value: invocation.Arguments[1]},
					values.AssociationPair{Name: "options", Value: invocation.Arguments[2]},
					values.AssociationPair{Name: "center", Value: invocation.Arguments[3]},
					values.AssociationPair{Name: "radius", Value: invocation.Arguments[4]},
				), nil
			},
		},
	)

	return circle
}

func circleArguments() []values.Value {
	return []values.Value{
		values.NewTupleValue(values.NewIntValue(0), values.NewIntValue(0)),
		values.NewFloatValue(1),
	}
}

func TestKeywordCallBindsSuppliedAndDefaulted(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	circle := defineCircle(registry)

	// circle((0, 0), 1.0, color = red)
	result, err := engine.CallWithKeywords(
		circle.Value,
		[]dispatch.NamedArgument{
			{Name: "color", Value: values.NewStringValue("red")},
		},
		nil,
		circleArguments()...,
	)
	require.NoError(t, err)

	bound := result.(*values.AssociationValue)

	color, _ := bound.Get("color")
	assert.Equal(t, values.NewStringValue("red"), color)

	fill, _ := bound.Get("fill")
	assert.Equal(t, values.TrueValue, fill)

	options, _ := bound.Get("options")
	assert.Empty(t, options.(*values.AssociationValue).Pairs)
}

func TestKeywordPositionalEquivalence(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	circle := defineCircle(registry)

	// The keyword-free form and the keyword form with the default
	// supplied explicitly must produce identical results
	withoutKeywords, err := engine.Call(circle.Value, circleArguments()...)
	require.NoError(t, err)

	withExplicitDefault, err := engine.CallWithKeywords(
		circle.Value,
		[]dispatch.NamedArgument{
			{Name: "color", Value: values.NewStringValue("black")},
		},
		nil,
		circleArguments()...,
	)
	require.NoError(t, err)

	assert.Equal(t, withoutKeywords, withExplicitDefault)
}

func TestKeywordFreeCallNeverTouchesSorter(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	circle := defineCircle(registry)

	sorter, ok := registry.KeywordSorter(circle.Identity)
	require.True(t, ok)

	entriesBefore := len(sorter.Function.Table().Methods())

	_, err := engine.Call(circle.Value, circleArguments()...)
	require.NoError(t, err)

	// The keyword mechanism costs keyword-free call sites nothing:
	// the sorter's table sees neither a lookup nor a definition
	assert.Equal(t, 0, sorter.Function.Table().CacheSize())
	assert.Len(t, sorter.Function.Table().Methods(), entriesBefore)
}

func TestKeywordDefaultsEvaluateLeftToRight(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	f := registry.NewGenericFunction("f")

	registry.DefineKeywordMethod(
		f,
		dispatch.KeywordMethod{
			Keywords: []dispatch.KeywordParameter{
				{
					Name: "low",
					Default: func(scope *dispatch.KeywordScope) (values.Value, error) {
						// Defaults may read the positional parameters
						return scope.Positional(0), nil
					},
				},
				{
					Name: "high",
					Default: func(scope *dispatch.KeywordScope) (values.Value, error) {
						// ... and previously-bound keywords
						low, ok := scope.Keyword("low")
						require.True(t, ok)
						return values.NewIntValue(int64(low.(values.IntValue)) + 10), nil
					},
				},
			},
			PositionalTypes: []*types.Type{values.IntType},
			Body: func(invocation dispatch.Invocation) (values.Value, error) {
				return values.NewTupleValue(
					invocation.Arguments[0],
					invocation.Arguments[1],
				), nil
			},
		},
	)

	// Both defaulted: low = 5 (positional), high = low + 10
	result, err := engine.Call(f.Value, values.NewIntValue(5))
	require.NoError(t, err)
	assert.Equal(
		t,
		values.NewTupleValue(values.NewIntValue(5), values.NewIntValue(15)),
		result,
	)

	// low supplied: high's default must see the supplied value
	result, err = engine.CallWithKeywords(
		f.Value,
		[]dispatch.NamedArgument{
			{Name: "low", Value: values.NewIntValue(100)},
		},
		nil,
		values.NewIntValue(5),
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		values.NewTupleValue(values.NewIntValue(100), values.NewIntValue(110)),
		result,
	)
}

func TestKeywordSplices(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	circle := defineCircle(registry)

	// Spliced associations merge after the literal keywords;
	// unrecognized names land in the catch-all in original order
	result, err := engine.CallWithKeywords(
		circle.Value,
		[]dispatch.NamedArgument{
			{Name: "color", Value: values.NewStringValue("red")},
		},
		[]values.Value{
			values.NewAssociationValue(
				values.AssociationPair{Name: "opacity", Value: values.NewFloatValue(0.5)},
				values.AssociationPair{Name: "dashed", Value: values.TrueValue},
			),
			values.NewTupleValue(
				values.NewStringValue("layer"),
				values.NewIntValue(3),
			),
		},
		circleArguments()...,
	)
	require.NoError(t, err)

	options, _ := result.(*values.AssociationValue).Get("options")
	rest := options.(*values.AssociationValue)
	require.Len(t, rest.Pairs, 3)
	assert.Equal(t, "opacity", rest.Pairs[0].Name)
	assert.Equal(t, "dashed", rest.Pairs[1].Name)
	assert.Equal(t, "layer", rest.Pairs[2].Name)
}

func TestMalformedKeywordSplice(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	circle := defineCircle(registry)

	// An element that does not decompose into a name/value pair fails
	// at the sorter call boundary, before any default is evaluated
	_, err := engine.CallWithKeywords(
		circle.Value,
		nil,
		[]values.Value{
			values.NewIntValue(1),
		},
		circleArguments()...,
	)
	var malformedErr *dispatch.MalformedKeywordArgumentError
	require.ErrorAs(t, err, &malformedErr)

	_, err = engine.CallWithKeywords(
		circle.Value,
		nil,
		[]values.Value{
			// A tuple of the wrong shape does not decompose either
			values.NewTupleValue(values.NewIntValue(1)),
		},
		circleArguments()...,
	)
	require.ErrorAs(t, err, &malformedErr)
}

func TestUnknownKeywordWithoutCatchAll(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	f := registry.NewGenericFunction("f")

	registry.DefineKeywordMethod(
		f,
		dispatch.KeywordMethod{
			Keywords: []dispatch.KeywordParameter{
				{
					Name: "mode",
					Default: func(_ *dispatch.KeywordScope) (values.Value, error) {
						return values.NewStringValue("fast"), nil
					},
				},
			},
			PositionalTypes: []*types.Type{values.IntType},
			Body: func(invocation dispatch.Invocation) (values.Value, error) {
				return invocation.Arguments[0], nil
			},
		},
	)

	_, err := engine.CallWithKeywords(
		f.Value,
		[]dispatch.NamedArgument{
			{Name: "speed", Value: values.NewIntValue(9)},
		},
		nil,
		values.NewIntValue(1),
	)
	var unknownErr *dispatch.UnknownKeywordArgumentError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "speed", unknownErr.Name)
}

func TestRequiredKeyword(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	f := registry.NewGenericFunction("f")

	registry.DefineKeywordMethod(
		f,
		dispatch.KeywordMethod{
			Keywords: []dispatch.KeywordParameter{
				{Name: "target"},
			},
			PositionalTypes: []*types.Type{values.IntType},
			Body: func(invocation dispatch.Invocation) (values.Value, error) {
				return invocation.Arguments[0], nil
			},
		},
	)

	_, err := engine.CallWithKeywords(
		f.Value,
		nil,
		nil,
		values.NewIntValue(1),
	)
	var missingErr *dispatch.MissingKeywordArgumentError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "target", missingErr.Name)

	result, err := engine.CallWithKeywords(
		f.Value,
		[]dispatch.NamedArgument{
			{Name: "target", Value: values.NewIntValue(7)},
		},
		nil,
		values.NewIntValue(1),
	)
	require.NoError(t, err)
	assert.Equal(t, values.NewIntValue(7), result)
}

func TestKeywordCallWithoutKeywordMethods(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	f := registry.NewGenericFunction("f")
	f.Define(constantMethod("plain"), values.IntType)

	_, err := engine.CallWithKeywords(
		f.Value,
		[]dispatch.NamedArgument{
			{Name: "mode", Value: values.NewIntValue(1)},
		},
		nil,
		values.NewIntValue(1),
	)
	var noKeywordErr *dispatch.NoKeywordMethodError
	require.ErrorAs(t, err, &noKeywordErr)
}
