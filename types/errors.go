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

package types

import (
	"fmt"

	"github.com/veldt-lang/veldt/errors"
)

// NonAbstractSupertypeError

// NonAbstractSupertypeError is reported when a type family is declared
// with a concrete supertype. Only abstract identities can be extended.
type NonAbstractSupertypeError struct {
	Supertype *Identity
	Name      string
}

var _ errors.UserError = &NonAbstractSupertypeError{}

func (*NonAbstractSupertypeError) IsUserError() {}

func (e *NonAbstractSupertypeError) Error() string {
	return fmt.Sprintf(
		"cannot declare type `%s`: supertype `%s` is not abstract",
		e.Name,
		e.Supertype.Name(),
	)
}

// InvalidTypeArgumentCountError

type InvalidTypeArgumentCountError struct {
	Identity      *Identity
	ExpectedCount int
	ActualCount   int
}

var _ errors.UserError = &InvalidTypeArgumentCountError{}

func (*InvalidTypeArgumentCountError) IsUserError() {}

func (e *InvalidTypeArgumentCountError) Error() string {
	return fmt.Sprintf(
		"cannot instantiate `%s`: expected %d type arguments, got %d",
		e.Identity.Name(),
		e.ExpectedCount,
		e.ActualCount,
	)
}

// MissingVariadicConstraintError

type MissingVariadicConstraintError struct{}

var _ errors.InternalError = &MissingVariadicConstraintError{}

func (*MissingVariadicConstraintError) IsInternalError() {}

func (e *MissingVariadicConstraintError) Error() string {
	return "variadic pattern requires at least a tail constraint"
}
