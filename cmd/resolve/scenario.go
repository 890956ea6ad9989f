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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/xerrors"

	"github.com/veldt-lang/veldt/dispatch"
	"github.com/veldt-lang/veldt/types"
	"github.com/veldt-lang/veldt/values"
)

// Scenario is the YAML description of a type universe, the generic
// functions defined over it, and the calls to resolve against them.
type Scenario struct {
	Types     []TypeDeclaration     `yaml:"types"`
	Functions []FunctionDeclaration `yaml:"functions"`
	Builtins  []string              `yaml:"builtins"`
	Calls     []Call                `yaml:"calls"`
}

// TypeDeclaration declares a named type.
// The supertype, if any, must be declared earlier and be abstract.
type TypeDeclaration struct {
	Name       string `yaml:"name"`
	Supertype  string `yaml:"supertype"`
	Abstract   bool   `yaml:"abstract"`
	Parameters int    `yaml:"parameters"`
}

// MethodDeclaration declares one method of a generic function.
// The pattern lists type references for the ordinary argument positions;
// a trailing "..." on the last reference makes the pattern variadic.
// Invoking the method produces the result tag as a string value.
type MethodDeclaration struct {
	Pattern []string `yaml:"pattern"`
	Result  string   `yaml:"result"`
}

type FunctionDeclaration struct {
	Name    string              `yaml:"name"`
	Methods []MethodDeclaration `yaml:"methods"`
}

// Call names a function and the runtime types of its arguments.
type Call struct {
	Function  string   `yaml:"function"`
	Arguments []string `yaml:"arguments"`
}

func LoadScenario(path string) (*Scenario, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("failed to read scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(contents, &scenario); err != nil {
		return nil, xerrors.Errorf("failed to parse scenario: %w", err)
	}

	return &scenario, nil
}

// specimen is a stand-in argument value which carries only a runtime type.
type specimen struct {
	staticType *types.Type
}

var _ values.Value = specimen{}

func (specimen) IsValue() {}

func (s specimen) StaticType() *types.Type {
	return s.staticType
}

func (s specimen) String() string {
	return fmt.Sprintf("<%s>", s.staticType)
}

// Runner owns the registry and engine a scenario is resolved against.
type Runner struct {
	registry   *dispatch.Registry
	engine     *dispatch.Engine
	identities map[string]*types.Identity
	functions  map[string]*dispatch.GenericFunction
}

func NewRunner(scenario *Scenario, config *dispatch.Config) (*Runner, error) {
	registry := dispatch.NewRegistry()

	runner := &Runner{
		registry:   registry,
		engine:     dispatch.NewEngine(registry, config),
		identities: map[string]*types.Identity{},
		functions:  map[string]*dispatch.GenericFunction{},
	}

	for _, declaration := range scenario.Types {
		if err := runner.declareType(declaration); err != nil {
			return nil, err
		}
	}

	for _, declaration := range scenario.Functions {
		if err := runner.declareFunction(declaration); err != nil {
			return nil, err
		}
	}

	for _, name := range scenario.Builtins {
		if _, ok := runner.functions[name]; ok {
			return nil, xerrors.Errorf("function %q declared twice", name)
		}

		runner.functions[name] = registry.NewBuiltinFunction(
			name,
			func(invocation dispatch.Invocation) (values.Value, error) {
				return values.NewStringValue(string(invocation.Signature.ID())), nil
			},
		)
	}

	return runner, nil
}

func (r *Runner) Generation() uint64 {
	return r.registry.Generation()
}

func (r *Runner) Function(name string) (*dispatch.GenericFunction, bool) {
	function, ok := r.functions[name]
	return function, ok
}

func (r *Runner) declareType(declaration TypeDeclaration) error {
	if _, ok := r.identities[declaration.Name]; ok {
		return xerrors.Errorf("type %q declared twice", declaration.Name)
	}

	var supertype *types.Identity
	if declaration.Supertype != "" {
		var ok bool
		supertype, ok = r.identities[declaration.Supertype]
		if !ok {
			return xerrors.Errorf(
				"type %q has undeclared supertype %q",
				declaration.Name,
				declaration.Supertype,
			)
		}
		if !supertype.IsAbstract() {
			return xerrors.Errorf(
				"type %q has concrete supertype %q",
				declaration.Name,
				declaration.Supertype,
			)
		}
	}

	if declaration.Abstract {
		if declaration.Parameters > 0 {
			return xerrors.Errorf("abstract type %q cannot have type parameters", declaration.Name)
		}
		r.identities[declaration.Name] = types.NewAbstractIdentity(declaration.Name, supertype)
	} else {
		r.identities[declaration.Name] = types.NewIdentity(
			declaration.Name,
			declaration.Parameters,
			supertype,
		)
	}

	return nil
}

func (r *Runner) declareFunction(declaration FunctionDeclaration) error {
	if _, ok := r.functions[declaration.Name]; ok {
		return xerrors.Errorf("function %q declared twice", declaration.Name)
	}

	function := r.registry.NewGenericFunction(declaration.Name)
	r.functions[declaration.Name] = function

	for _, method := range declaration.Methods {
		pattern, err := r.pattern(function, method.Pattern)
		if err != nil {
			return err
		}

		result := values.NewStringValue(method.Result)
		function.Table().Define(
			pattern,
			func(_ dispatch.Invocation) (values.Value, error) {
				return result, nil
			},
		)
	}

	return nil
}

func (r *Runner) pattern(
	function *dispatch.GenericFunction,
	references []string,
) (types.Pattern, error) {
	constraints := make([]*types.Type, 0, len(references)+1)
	constraints = append(constraints, function.Type())

	variadic := false
	for i, reference := range references {
		if trimmed, ok := strings.CutSuffix(reference, "..."); ok {
			if i != len(references)-1 {
				return types.Pattern{}, xerrors.Errorf(
					"variadic constraint %q must be last in pattern of %q",
					reference,
					function.Name(),
				)
			}
			variadic = true
			reference = trimmed
		}

		constraint, err := r.resolveType(reference)
		if err != nil {
			return types.Pattern{}, err
		}
		constraints = append(constraints, constraint)
	}

	if variadic {
		return types.NewVariadicPattern(constraints...), nil
	}
	return types.NewPattern(constraints...), nil
}

// resolveType resolves a type reference of the form `Name`
// or `Name<Argument, ...>`, with arbitrarily nested arguments.
func (r *Runner) resolveType(reference string) (*types.Type, error) {
	reference = strings.TrimSpace(reference)

	name, argumentList, parameterized := strings.Cut(reference, "<")
	if parameterized {
		if !strings.HasSuffix(argumentList, ">") {
			return nil, xerrors.Errorf("malformed type reference %q", reference)
		}
		argumentList = strings.TrimSuffix(argumentList, ">")
	}

	if name == "Any" {
		if parameterized {
			return nil, xerrors.Errorf("type Any has no type parameters")
		}
		return types.AnyType, nil
	}

	identity, ok := r.identities[name]
	if !ok {
		return nil, xerrors.Errorf("undeclared type %q", name)
	}

	var typeArguments []*types.Type
	if parameterized {
		for _, argument := range splitTypeArguments(argumentList) {
			typeArgument, err := r.resolveType(argument)
			if err != nil {
				return nil, err
			}
			typeArguments = append(typeArguments, typeArgument)
		}
	}

	if len(typeArguments) != identity.TypeParameterCount() {
		return nil, xerrors.Errorf(
			"type %q expects %d type argument(s), got %d",
			name,
			identity.TypeParameterCount(),
			len(typeArguments),
		)
	}

	return types.NewType(identity, typeArguments...), nil
}

// splitTypeArguments splits an argument list on the commas
// which are not nested inside angle brackets.
func splitTypeArguments(argumentList string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range argumentList {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, argumentList[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, argumentList[start:])
}

// Resolve dispatches the call and reports the selected method entry
// alongside the invocation result.
func (r *Runner) Resolve(call Call) (*dispatch.MethodEntry, values.Value, error) {
	function, ok := r.functions[call.Function]
	if !ok {
		return nil, nil, xerrors.Errorf("undeclared function %q", call.Function)
	}

	arguments := make([]values.Value, len(call.Arguments))
	signature := make(types.Signature, len(call.Arguments)+1)
	signature[0] = function.Type()

	for i, reference := range call.Arguments {
		argumentType, err := r.resolveType(reference)
		if err != nil {
			return nil, nil, err
		}
		arguments[i] = specimen{staticType: argumentType}
		signature[i+1] = argumentType
	}

	table := function.Table()
	entry := table.IntrinsicEntry()
	if entry == nil {
		var err error
		entry, err = table.Lookup(signature)
		if err != nil {
			return nil, nil, err
		}
	}

	result, err := r.engine.Call(function.Value, arguments...)
	return entry, result, err
}
