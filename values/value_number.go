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
	"strconv"

	"github.com/veldt-lang/veldt/types"
)

// IntValue

type IntValue int64

var _ Value = IntValue(0)

func NewIntValue(value int64) IntValue {
	return IntValue(value)
}

func (IntValue) IsValue() {}

func (IntValue) StaticType() *types.Type {
	return IntType
}

func (v IntValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Int8Value

type Int8Value int8

var _ Value = Int8Value(0)

func NewInt8Value(value int8) Int8Value {
	return Int8Value(value)
}

func (Int8Value) IsValue() {}

func (Int8Value) StaticType() *types.Type {
	return Int8Type
}

func (v Int8Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// FloatValue

type FloatValue float64

var _ Value = FloatValue(0)

func NewFloatValue(value float64) FloatValue {
	return FloatValue(value)
}

func (FloatValue) IsValue() {}

func (FloatValue) StaticType() *types.Type {
	return FloatType
}

func (v FloatValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}
