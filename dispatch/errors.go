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
	"fmt"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/veldt-lang/veldt/errors"
	"github.com/veldt-lang/veldt/types"
	"github.com/veldt-lang/veldt/values"
)

// NoMethodError

// NoMethodError is reported when no method's pattern is applicable to the
// concrete argument signature. It is fatal to the call, not to the process,
// and is never retried.
type NoMethodError struct {
	Identity  *types.Identity
	Signature types.Signature
	// Methods are the entries defined at lookup time, for diagnostics.
	Methods []*MethodEntry
}

var _ errors.UserError = &NoMethodError{}
var _ errors.SecondaryError = &NoMethodError{}

func (*NoMethodError) IsUserError() {}

func (e *NoMethodError) Error() string {
	return fmt.Sprintf(
		"no applicable method for `%s` with argument signature %s",
		e.Identity.Name(),
		e.Signature,
	)
}

func (e *NoMethodError) SecondaryError() string {
	if len(e.Methods) == 0 {
		return fmt.Sprintf("`%s` has no methods", e.Identity.Name())
	}
	closest := e.findClosestPattern()
	if closest == "" {
		return fmt.Sprintf("`%s` has %d unrelated methods", e.Identity.Name(), len(e.Methods))
	}
	return fmt.Sprintf("closest method pattern is `%s`", closest)
}

// findClosestPattern searches the patterns of the defined methods and
// finds the one with the smallest edit distance from the call's concrete
// signature. In cases of near misses, this should provide a helpful hint.
func (e *NoMethodError) findClosestPattern() (closestPattern string) {
	signatureRunes := []rune(e.Signature.String())

	closestDistance := len(signatureRunes)

	for _, entry := range e.Methods {
		pattern := entry.Pattern().String()
		distance := levenshtein.DistanceForStrings(
			signatureRunes,
			[]rune(pattern),
			levenshtein.DefaultOptions,
		)

		// Don't update the closest pattern if the distance is greater than
		// one already found, or if the edits required would involve a
		// complete replacement of the pattern's text
		if distance < closestDistance && distance < len(pattern) {
			closestPattern = pattern
			closestDistance = distance
		}
	}

	return
}

// AmbiguousMethodError

// AmbiguousMethodError is reported when more than one maximally-specific
// applicable method exists and none strictly dominates the others.
//
// It is detected lazily at dispatch time, never at definition time:
// a definition may introduce an ambiguous overlap that no call site
// ever reaches.
type AmbiguousMethodError struct {
	Identity  *types.Identity
	Signature types.Signature
	// Candidates are the maximally-specific applicable entries,
	// in definition order.
	Candidates []*MethodEntry
}

var _ errors.UserError = &AmbiguousMethodError{}
var _ errors.SecondaryError = &AmbiguousMethodError{}

func (*AmbiguousMethodError) IsUserError() {}

func (e *AmbiguousMethodError) Error() string {
	return fmt.Sprintf(
		"ambiguous call to `%s` with argument signature %s",
		e.Identity.Name(),
		e.Signature,
	)
}

func (e *AmbiguousMethodError) SecondaryError() string {
	patterns := make([]string, len(e.Candidates))
	for i, candidate := range e.Candidates {
		patterns[i] = candidate.Pattern().String()
	}
	return fmt.Sprintf(
		"candidate patterns %s are applicable and none is more specific than the others",
		strings.Join(patterns, ", "),
	)
}

// MalformedKeywordArgumentError

// MalformedKeywordArgumentError is reported at the keyword-sorter call
// boundary, before any default expression is evaluated, when a spliced
// keyword-argument element does not decompose into a name and a value.
type MalformedKeywordArgumentError struct {
	Value values.Value
}

var _ errors.UserError = &MalformedKeywordArgumentError{}

func (*MalformedKeywordArgumentError) IsUserError() {}

func (e *MalformedKeywordArgumentError) Error() string {
	return fmt.Sprintf(
		"spliced keyword argument %s does not decompose into a name/value pair",
		e.Value,
	)
}

// MissingKeywordArgumentError

// MissingKeywordArgumentError is reported when a keyword parameter
// declared without a default expression receives no argument.
type MissingKeywordArgumentError struct {
	FunctionName string
	Name         string
}

var _ errors.UserError = &MissingKeywordArgumentError{}

func (*MissingKeywordArgumentError) IsUserError() {}

func (e *MissingKeywordArgumentError) Error() string {
	return fmt.Sprintf(
		"call to `%s` is missing required keyword argument `%s`",
		e.FunctionName,
		e.Name,
	)
}

// UnknownKeywordArgumentError

// UnknownKeywordArgumentError is reported when a keyword argument does not
// match any declared keyword parameter and the method declares no catch-all.
type UnknownKeywordArgumentError struct {
	FunctionName string
	Name         string
}

var _ errors.UserError = &UnknownKeywordArgumentError{}

func (*UnknownKeywordArgumentError) IsUserError() {}

func (e *UnknownKeywordArgumentError) Error() string {
	return fmt.Sprintf(
		"call to `%s` has unknown keyword argument `%s`",
		e.FunctionName,
		e.Name,
	)
}

// NoKeywordMethodError

// NoKeywordMethodError is reported when a call supplies keyword arguments
// to a function that has no keyword-bearing methods.
type NoKeywordMethodError struct {
	Identity *types.Identity
}

var _ errors.UserError = &NoKeywordMethodError{}

func (*NoKeywordMethodError) IsUserError() {}

func (e *NoKeywordMethodError) Error() string {
	return fmt.Sprintf(
		"`%s` accepts no keyword arguments",
		e.Identity.Name(),
	)
}

// IntrinsicRedefinitionError

// IntrinsicRedefinitionError is reported when a method definition targets
// an intrinsic's method table. Intrinsic tables hold exactly one catch-all
// entry and are never extended.
type IntrinsicRedefinitionError struct {
	Identity *types.Identity
}

var _ errors.UserError = &IntrinsicRedefinitionError{}

func (*IntrinsicRedefinitionError) IsUserError() {}

func (e *IntrinsicRedefinitionError) Error() string {
	return fmt.Sprintf(
		"cannot define additional methods on intrinsic `%s`",
		e.Identity.Name(),
	)
}
