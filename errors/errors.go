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

package errors

import (
	"fmt"
	"runtime/debug"
)

// InternalError is an implementation error, e.g. an unreachable code path
// (UnreachableError). The runtime should never produce an InternalError
// in an ideal world.
//
// InternalError s must always be propagated up the call stack
// and never be silently swallowed.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by the dispatched program,
// e.g. a call for which no method is applicable.
type UserError interface {
	error
	IsUserError()
}

// SecondaryError is an interface for errors that provide
// a secondary error message in addition to the primary message
type SecondaryError interface {
	SecondaryError() string
}

// UnreachableError

// UnreachableError is an internal error in the runtime
// which should have never occurred due to a programming error.
//
// NOTE: this error is never used for errors in dispatched programs,
// for those see the dispatch package's error types.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (UnreachableError) IsInternalError() {}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

// DefaultUserError formats a basic user error from a format string.
func NewDefaultUserError(message string, args ...any) *DefaultUserError {
	return &DefaultUserError{
		message: fmt.Sprintf(message, args...),
	}
}

type DefaultUserError struct {
	message string
}

var _ UserError = &DefaultUserError{}

func (e *DefaultUserError) Error() string {
	return e.message
}

func (*DefaultUserError) IsUserError() {}
