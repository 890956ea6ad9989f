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

// The resolve command loads a dispatch scenario from a YAML file,
// resolves each of its calls, and reports the selected methods.
//
// It exists to answer "which method wins?" questions without writing
// a program: declare a type hierarchy, some methods, and the call
// signatures of interest, and read the resolutions off the output.
package main

import (
	goerrors "errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kr/pretty"
	"go.opentelemetry.io/otel/attribute"

	"github.com/veldt-lang/veldt/dispatch"
	"github.com/veldt-lang/veldt/errors"
)

var verboseFlag = flag.Bool("verbose", false, "dump the loaded scenario and the method tables")
var noCacheFlag = flag.Bool("no-cache", false, "force a full search on every resolution")
var traceFlag = flag.Bool("trace", false, "report a dispatch trace for every call")

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		_, _ = fmt.Fprintln(os.Stderr, "usage: resolve [flags] scenario.yaml")
		flag.PrintDefaults()
		os.Exit(1)
	}

	scenario, err := LoadScenario(args[0])
	if err != nil {
		exitWithError(err)
	}

	config := &dispatch.Config{
		CacheDisabled: *noCacheFlag,
	}
	if *traceFlag {
		config.Tracer = dispatch.Tracer{
			TracingEnabled: true,
			OnRecordTrace:  printTrace,
		}
	}

	runner, err := NewRunner(scenario, config)
	if err != nil {
		exitWithError(err)
	}

	if *verboseFlag {
		_, _ = pretty.Printf("%# v\n", scenario)
		printTables(scenario, runner)
	}

	failed := false
	for _, call := range scenario.Calls {
		if !printResolution(runner, call) {
			failed = true
		}
	}

	if *verboseFlag {
		fmt.Printf("generation: %d\n", runner.Generation())
	}

	if failed {
		os.Exit(1)
	}
}

func printResolution(runner *Runner, call Call) bool {
	site := fmt.Sprintf(
		"%s(%s)",
		call.Function,
		strings.Join(call.Arguments, ", "),
	)

	entry, result, err := runner.Resolve(call)
	if err != nil {
		message := err.Error()
		var secondary errors.SecondaryError
		if goerrors.As(err, &secondary) {
			message += ". " + secondary.SecondaryError()
		}
		fmt.Printf("%s => %s\n", site, colorizeError(message))
		return false
	}

	fmt.Printf(
		"%s => %s %s\n",
		site,
		colorizePattern(entry.Pattern()),
		colorizeResult(result),
	)
	return true
}

func printTables(scenario *Scenario, runner *Runner) {
	for _, declaration := range scenario.Functions {
		function, ok := runner.Function(declaration.Name)
		if !ok {
			continue
		}

		fmt.Printf("table %s:\n", function.Name())
		for _, entry := range function.Table().Methods() {
			fmt.Printf("  %s\n", entry)
		}
	}
}

func printTrace(operationName string, duration time.Duration, attrs []attribute.KeyValue) {
	var builder strings.Builder
	builder.WriteString(operationName)
	builder.WriteByte(' ')
	builder.WriteString(duration.String())
	for _, attr := range attrs {
		_, _ = fmt.Fprintf(&builder, " %s=%s", attr.Key, attr.Value.Emit())
	}
	_, _ = fmt.Fprintln(os.Stderr, builder.String())
}

func exitWithError(err error) {
	_, _ = fmt.Fprintln(os.Stderr, colorizeError(err.Error()))
	os.Exit(1)
}
