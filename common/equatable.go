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

package common

type Equatable[T any] interface {
	Equal(other T) bool
}

// EqualSlices returns true if both slices have the same length
// and all elements at corresponding positions compare equal.
func EqualSlices[T Equatable[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i, element := range a {
		if !element.Equal(b[i]) {
			return false
		}
	}
	return true
}
