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
	"github.com/veldt-lang/veldt/errors"
	"github.com/veldt-lang/veldt/types"
	"github.com/veldt-lang/veldt/values"
)

// KeywordParameter declares one keyword parameter of a method.
type KeywordParameter struct {
	Name string
	// Default evaluates the parameter's default value.
	// nil means the keyword is required.
	Default DefaultExpression
}

// DefaultExpression evaluates a keyword parameter's default value.
// Defaults are evaluated left to right in declaration order, and each may
// read the keywords bound before it and all positional parameters.
type DefaultExpression func(scope *KeywordScope) (values.Value, error)

// KeywordScope is the environment a default expression evaluates in.
type KeywordScope struct {
	bound      map[string]values.Value
	positional []values.Value
}

func newKeywordScope(positional []values.Value) *KeywordScope {
	return &KeywordScope{
		bound:      map[string]values.Value{},
		positional: positional,
	}
}

// Keyword returns the value of a previously-bound keyword parameter.
func (s *KeywordScope) Keyword(name string) (values.Value, bool) {
	value, ok := s.bound[name]
	return value, ok
}

// Positional returns the positional parameter at the given index.
func (s *KeywordScope) Positional(index int) values.Value {
	return s.positional[index]
}

func (s *KeywordScope) bind(name string, value values.Value) {
	s.bound[name] = value
}

// KeywordMethod declares one keyword-bearing method.
type KeywordMethod struct {
	// Body is the original method body. It is registered as the hidden
	// canonical method and receives, after the callee, the bound keyword
	// values in declaration order, then the catch-all association, then
	// the positional parameters.
	Body     HostFunction
	Keywords []KeywordParameter
	// PositionalTypes constrain the ordinary positional parameters.
	PositionalTypes []*types.Type
	// CollectsRest declares a catch-all for unrecognized keywords.
	// Without it, an unrecognized keyword fails the call.
	CollectsRest bool
}

// KeywordSorter is the auxiliary dispatchable function that canonicalizes
// the keyword-bearing calls of one generic function into positional calls.
// It is created lazily, on the function's first keyword-bearing method
// definition, and is itself dispatched through the ordinary engine.
//
// A call site supplying no keyword arguments never touches the sorter:
// it dispatches directly to the ordinary method registered on the
// function itself, so the keyword mechanism costs keyword-free call
// sites nothing.
type KeywordSorter struct {
	// Function is the sorter function, named `g#kwsorter` for a
	// generic function `g`.
	Function *GenericFunction
	// canonical is the hidden function, named `g#canonical`,
	// carrying the original bodies.
	canonical *GenericFunction
}

// Canonical returns the hidden canonical function. Introspection only.
func (s *KeywordSorter) Canonical() *GenericFunction {
	return s.canonical
}

// KeywordSorter returns the sorter of the generic function owning the
// given identity, if the function has any keyword-bearing methods.
func (r *Registry) KeywordSorter(identity *types.Identity) (*KeywordSorter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorter, ok := r.keywordSorters[identity.ID()]
	return sorter, ok
}

func (r *Registry) keywordSorterFor(function *GenericFunction) *KeywordSorter {
	r.mu.Lock()
	defer r.mu.Unlock()

	sorter, ok := r.keywordSorters[function.Identity.ID()]
	if ok {
		return sorter
	}

	name := function.Name()
	sorter = &KeywordSorter{
		Function:  r.newGenericFunctionLocked(name + "#kwsorter"),
		canonical: r.newGenericFunctionLocked(name + "#canonical"),
	}
	r.keywordSorters[function.Identity.ID()] = sorter
	return sorter
}

// DefineKeywordMethod registers a keyword-bearing method on the given
// generic function, in the three-method form:
//
//  1. the hidden canonical method, carrying the original body, whose
//     positional parameter list is the keywords (declaration order),
//     the catch-all container, then the original positional parameters;
//  2. an ordinary positional method on the function itself, which binds
//     every keyword to its default and forwards to the canonical method;
//  3. an entry on the function's keyword sorter taking the supplied
//     association first, binding declared keywords from it (falling back
//     to defaults), collecting unrecognized entries into the catch-all,
//     and forwarding to the canonical method.
func (r *Registry) DefineKeywordMethod(
	function *GenericFunction,
	method KeywordMethod,
) *KeywordSorter {
	sorter := r.keywordSorterFor(function)

	keywords := method.Keywords
	declared := make(map[string]struct{}, len(keywords))
	for _, keyword := range keywords {
		declared[keyword.Name] = struct{}{}
	}

	// 1. The canonical method: K ++ [catch_all] ++ P after the callee
	canonicalConstraints := make(
		[]*types.Type,
		0,
		len(keywords)+len(method.PositionalTypes)+2,
	)
	canonicalConstraints = append(canonicalConstraints, sorter.canonical.Type())
	for range keywords {
		canonicalConstraints = append(canonicalConstraints, types.AnyType)
	}
	canonicalConstraints = append(canonicalConstraints, values.AssociationType)
	canonicalConstraints = append(canonicalConstraints, method.PositionalTypes...)

	sorter.canonical.table.Define(
		types.NewPattern(canonicalConstraints...),
		method.Body,
	)

	// 2. The ordinary positional method: every keyword takes its default
	function.Define(
		func(invocation Invocation) (values.Value, error) {
			scope := newKeywordScope(invocation.Arguments)

			forwarded := make(
				[]values.Value,
				0,
				len(keywords)+len(invocation.Arguments)+1,
			)
			for _, keyword := range keywords {
				if keyword.Default == nil {
					return nil, &MissingKeywordArgumentError{
						FunctionName: function.Name(),
						Name:         keyword.Name,
					}
				}
				value, err := keyword.Default(scope)
				if err != nil {
					return nil, err
				}
				scope.bind(keyword.Name, value)
				forwarded = append(forwarded, value)
			}
			forwarded = append(forwarded, values.NewAssociationValue())
			forwarded = append(forwarded, invocation.Arguments...)

			return invocation.Engine.Call(sorter.canonical.Value, forwarded...)
		},
		method.PositionalTypes...,
	)

	// 3. The sorter entry: [association] ++ P after the callee
	sorter.Function.Define(
		func(invocation Invocation) (values.Value, error) {
			association, ok := invocation.Arguments[0].(*values.AssociationValue)
			if !ok {
				// The pattern constrains position 1 to Association
				panic(errors.NewUnreachableError())
			}
			positional := invocation.Arguments[1:]

			scope := newKeywordScope(positional)

			forwarded := make(
				[]values.Value,
				0,
				len(keywords)+len(positional)+1,
			)
			for _, keyword := range keywords {
				value, supplied := association.Get(keyword.Name)
				if !supplied {
					if keyword.Default == nil {
						return nil, &MissingKeywordArgumentError{
							FunctionName: function.Name(),
							Name:         keyword.Name,
						}
					}
					var err error
					value, err = keyword.Default(scope)
					if err != nil {
						return nil, err
					}
				}
				scope.bind(keyword.Name, value)
				forwarded = append(forwarded, value)
			}

			// Collect unrecognized keywords, in their original order
			var rest []values.AssociationPair
			for _, pair := range association.Pairs {
				if _, ok := declared[pair.Name]; ok {
					continue
				}
				if !method.CollectsRest {
					return nil, &UnknownKeywordArgumentError{
						FunctionName: function.Name(),
						Name:         pair.Name,
					}
				}
				rest = append(rest, pair)
			}

			forwarded = append(forwarded, values.NewAssociationValue(rest...))
			forwarded = append(forwarded, positional...)

			return invocation.Engine.Call(sorter.canonical.Value, forwarded...)
		},
		append(
			[]*types.Type{values.AssociationType},
			method.PositionalTypes...,
		)...,
	)

	return sorter
}

// NamedArgument is one literal keyword argument at a call site.
type NamedArgument struct {
	Name  string
	Value values.Value
}

// CallWithKeywords is the lowered form of a call site supplying keyword
// arguments: the literal named arguments plus any spliced association
// arguments are assembled into one association, and the call is
// dispatched to the callee's keyword sorter.
//
// Each spliced element must decompose into a name/value pair; a splice
// that does not fails with MalformedKeywordArgumentError before any
// default expression is evaluated.
func (e *Engine) CallWithKeywords(
	callee values.Value,
	named []NamedArgument,
	splices []values.Value,
	positional ...values.Value,
) (values.Value, error) {
	identity := callee.StaticType().Identity()

	sorter, ok := e.registry.KeywordSorter(identity)
	if !ok {
		return nil, &NoKeywordMethodError{
			Identity: identity,
		}
	}

	pairs := make([]values.AssociationPair, 0, len(named)+len(splices))
	for _, argument := range named {
		pairs = append(pairs, values.AssociationPair{
			Name:  argument.Name,
			Value: argument.Value,
		})
	}

	for _, splice := range splices {
		switch spliced := splice.(type) {
		case *values.AssociationValue:
			pairs = append(pairs, spliced.Pairs...)

		case *values.ListValue:
			for _, element := range spliced.Elements {
				pair, ok := decomposePair(element)
				if !ok {
					return nil, &MalformedKeywordArgumentError{
						Value: element,
					}
				}
				pairs = append(pairs, pair)
			}

		default:
			pair, ok := decomposePair(splice)
			if !ok {
				return nil, &MalformedKeywordArgumentError{
					Value: splice,
				}
			}
			pairs = append(pairs, pair)
		}
	}

	arguments := make([]values.Value, 0, len(positional)+1)
	arguments = append(arguments, values.NewAssociationValue(pairs...))
	arguments = append(arguments, positional...)

	return e.Call(sorter.Function.Value, arguments...)
}

// decomposePair decomposes a spliced element into a name/value pair:
// a two-element tuple whose first element is a string.
func decomposePair(value values.Value) (values.AssociationPair, bool) {
	tuple, ok := value.(*values.TupleValue)
	if !ok || len(tuple.Elements) != 2 {
		return values.AssociationPair{}, false
	}
	name, ok := tuple.Elements[0].(values.StringValue)
	if !ok {
		return values.AssociationPair{}, false
	}
	return values.AssociationPair{
		Name:  string(name),
		Value: tuple.Elements[1],
	}, true
}
