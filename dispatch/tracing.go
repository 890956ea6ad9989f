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

	"go.opentelemetry.io/otel/attribute"

	"github.com/veldt-lang/veldt/types"
)

const (
	tracingDispatchPrefix = "dispatch."

	tracingCallPostfix = "call"
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

type Tracer struct {
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports dispatch resolutions, e.g. cache hits and misses
	TracingEnabled bool
}

func (tracer Tracer) reportDispatchTrace(
	table *MethodTable,
	signature types.Signature,
	cacheHit bool,
	resolved bool,
	duration time.Duration,
) {
	tracer.OnRecordTrace(
		tracingDispatchPrefix+tracingCallPostfix,
		duration,
		[]attribute.KeyValue{
			attribute.String("callee", table.Identity().Name()),
			attribute.String("signature", string(signature.ID())),
			attribute.Bool("cacheHit", cacheHit),
			attribute.Bool("resolved", resolved),
			attribute.Int64("generation", int64(table.registry.Generation())),
		},
	)
}
