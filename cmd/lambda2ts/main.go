// Copyright 2022 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Binary lambda2ts reads a program from stdin, compiles it, and writes the
// generated type-level TypeScript to stdout. A single diagnostic is
// printed to stderr and the process exits non-zero on parse or I/O
// failure.
package main

import (
	"bufio"
	"flag"
	"io"
	"os"

	log "github.com/golang/glog"
	"go.uber.org/multierr"

	"github.com/susisu/lambda2ts-go/generate"
	"github.com/susisu/lambda2ts-go/parse"
	"github.com/susisu/lambda2ts-go/transform"
)

var preamble = flag.Bool("preamble", true, "emit the App/Fun preamble before the generated declarations")

func main() {
	flag.Parse()

	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Exitf("error reading stdin: %v", err)
	}

	program, err := parse.Parse(string(source))
	if err != nil {
		log.Exitf("error parsing program: %v", err)
	}
	log.V(1).Infof("parsed %d declaration(s)", len(program))

	transformed := transform.Program(program)
	log.V(1).Info("normalised and mangled all declarations")

	output := generate.Program(transformed, *preamble)

	// Each declaration already ends in a newline; one more is appended
	// so the output always ends in a blank line, the way a line-oriented
	// print statement would leave it.
	w := bufio.NewWriter(os.Stdout)
	_, writeErr := io.WriteString(w, output+"\n")
	flushErr := w.Flush()
	if err := multierr.Combine(writeErr, flushErr); err != nil {
		log.Exitf("error writing stdout: %v", err)
	}
}
