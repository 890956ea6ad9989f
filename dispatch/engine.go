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
	"time"

	"github.com/veldt-lang/veldt/types"
	"github.com/veldt-lang/veldt/values"
)

// Config are the engine settings.
type Config struct {
	Tracer Tracer
	// CacheDisabled forces every dispatch down the full-search path.
	// It never changes which method is selected, only performance.
	CacheDisabled bool
}

// Engine resolves call sites to method entries and invokes them.
//
// An engine is safe for concurrent use: dispatch never blocks,
// and definitions running concurrently with dispatch are observed
// either entirely or not at all.
type Engine struct {
	registry *Registry
	config   Config
}

func NewEngine(registry *Registry, config *Config) *Engine {
	engine := &Engine{
		registry: registry,
	}
	if config != nil {
		engine.config = *config
	}
	return engine
}

func (e *Engine) Registry() *Registry {
	return e.registry
}

// Call dispatches a call on the runtime types of the callee and all
// arguments, and invokes the selected method.
//
// The callee's own type occupies position 0 of the concrete signature,
// so type-parametrized callables dispatch on themselves like any other
// argument. The selected method's result is returned as-is.
//
// A failed resolution returns NoMethodError or AmbiguousMethodError and
// is never retried: no state changed, so a retry would only reproduce
// the same failure.
func (e *Engine) Call(callee values.Value, arguments ...values.Value) (values.Value, error) {
	signature := make(types.Signature, len(arguments)+1)
	signature[0] = callee.StaticType()
	for i, argument := range arguments {
		signature[i+1] = argument.StaticType()
	}

	table := e.registry.Table(callee.StaticType().Identity())

	tracing := e.config.Tracer.TracingEnabled
	var start time.Time
	if tracing {
		start = time.Now()
	}

	var entry *MethodEntry
	var err error
	cacheHit := false

	if intrinsic := table.IntrinsicEntry(); intrinsic != nil {
		entry = intrinsic
	} else if e.config.CacheDisabled {
		entry, err = table.Lookup(signature)
	} else {
		entry, err, cacheHit = table.cachedLookup(signature)
	}

	if tracing {
		e.config.Tracer.reportDispatchTrace(
			table,
			signature,
			cacheHit,
			err == nil,
			time.Since(start),
		)
	}

	if err != nil {
		return nil, err
	}

	return entry.Invoke(Invocation{
		Callee:    callee,
		Arguments: arguments,
		Signature: signature,
		Engine:    e,
	})
}
