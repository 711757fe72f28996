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

// Package generate maps a Program in emit normal form (see the transform
// package) onto a target type-level encoding: a structurally typed,
// type-level lambda calculus embedded in a nominal host type system.
package generate

import (
	"fmt"
	"strings"

	"github.com/susisu/lambda2ts-go/ast"
)

// Preamble is emitted once at the top of every generated program.
const Preamble = "interface Fun { arg: unknown; ret: unknown }\n" +
	"type App<F, X> = F extends Fun ? (F & { arg: X })[\"ret\"] : never;\n"

// Program renders every declaration of p, in source order, preceded by the
// Preamble unless withPreamble is false.
func Program(p ast.Program, withPreamble bool) string {
	var b strings.Builder
	if withPreamble {
		b.WriteString(Preamble)
	}
	for _, decl := range p {
		b.WriteString(Declaration(decl))
	}
	return b.String()
}

// Declaration renders a single declaration, assuming its value is already
// in the normal form the transform package produces.
func Declaration(decl ast.Declaration) string {
	switch value := decl.Value.(type) {
	case ast.Var, ast.App:
		return fmt.Sprintf("type %s = %s;\n", decl.Name, renderTerm(value))
	case ast.Abs:
		return generateAbsSpine(decl.Name, value)
	case ast.Let:
		return generateLetSpine(decl.Name, value)
	default:
		panic("generate: unhandled Term variant in Declaration")
	}
}

// renderTerm renders an application-only term: Var{x} as x, App{f, a} as
// App<f, a>. Callers must not pass an Abs or a Let.
func renderTerm(t ast.Term) string {
	switch t := t.(type) {
	case ast.Var:
		return t.Name
	case ast.App:
		return fmt.Sprintf("App<%s, %s>", renderTerm(t.Func), renderTerm(t.Arg))
	default:
		panic("generate: renderTerm given a non-application term; transform pass was skipped")
	}
}

// generateAbsSpine walks the abstraction spine Abs{p1, Abs{p2, ... inner}}
// and emits one "extends Fun" interface per parameter plus a terminal type
// alias for inner, the not-Abs body at the end of the spine.
func generateAbsSpine(name string, value ast.Abs) string {
	var b strings.Builder
	var params []string
	depth := 0
	var cur ast.Term = value
	for {
		abs, ok := cur.(ast.Abs)
		if !ok {
			break
		}
		var sig, ret string
		if depth == 0 {
			sig = name
			ret = fmt.Sprintf("%s$1<this[\"arg\"]>", name)
		} else {
			args := strings.Join(params, ", ")
			sig = fmt.Sprintf("%s$%d<%s>", name, depth, args)
			ret = fmt.Sprintf("%s$%d<%s, this[\"arg\"]>", name, depth+1, args)
		}
		fmt.Fprintf(&b, "interface %s extends Fun { ret: %s }\n", sig, ret)
		params = append(params, abs.Param)
		depth++
		cur = abs.Body
	}
	fmt.Fprintf(&b, "type %s$%d<%s> = %s;\n", name, depth, strings.Join(params, ", "), renderTerm(cur))
	return b.String()
}

// generateLetSpine walks the Let spine of value, emitting each binding as
// its own pseudo-declaration "<name>$<inner>" before the outer name, so
// forward references resolve in the generated target source.
func generateLetSpine(name string, value ast.Let) string {
	var b strings.Builder
	var cur ast.Term = value
	for {
		let, ok := cur.(ast.Let)
		if !ok {
			break
		}
		innerName := fmt.Sprintf("%s$%s", name, let.Name)
		b.WriteString(Declaration(ast.Declaration{Name: innerName, Value: let.Value}))
		cur = ast.Subst(let.Body, let.Name, ast.Var{Name: innerName})
	}
	b.WriteString(Declaration(ast.Declaration{Name: name, Value: cur}))
	return b.String()
}
