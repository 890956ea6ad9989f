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
	"github.com/veldt-lang/veldt/values"
)

func TestClosureDispatch(t *testing.T) {

	t.Parallel()

	registry := dispatch.NewRegistry()
	engine := dispatch.NewEngine(registry, nil)

	// fun (x) { x + n }, capturing n
	adder := registry.NewClosureType(
		"adder",
		[]string{"n"},
		func(invocation dispatch.Invocation) (values.Value, error) {
			callee := invocation.Callee.(*values.ClosureValue)
			n, ok := callee.Field("n")
			require.True(t, ok)

			x := invocation.Arguments[0].(values.IntValue)
			return values.NewIntValue(int64(x) + int64(n.(values.IntValue))), nil
		},
		values.IntType,
	)

	// One type per capturing expression, one instance per evaluation
	addFive := adder.Instantiate(values.NewIntValue(5))
	addTen := adder.Instantiate(values.NewIntValue(10))

	assert.True(t, addFive.StaticType().Equal(addTen.StaticType()))

	// Calling a closure is ordinary dispatch on the instance's type:
	// the engine has no closure-specific path
	result, err := engine.Call(addFive, values.NewIntValue(2))
	require.NoError(t, err)
	assert.Equal(t, values.NewIntValue(7), result)

	result, err = engine.Call(addTen, values.NewIntValue(2))
	require.NoError(t, err)
	assert.Equal(t, values.NewIntValue(12), result)

	// The closure record type owns a single-entry method table
	assert.Len(t, registry.Table(adder.Identity()).Methods(), 1)

	// A call with an inapplicable argument fails like any other dispatch
	_, err = engine.Call(addFive, values.NewStringValue("x"))
	var noMethodErr *dispatch.NoMethodError
	require.ErrorAs(t, err, &noMethodErr)
}
