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

// Package ast contains the term representation of the surface language:
// a four-constructor lambda calculus with non-recursive let bindings.
package ast

import (
	"fmt"
	"regexp"
)

// identifierPattern matches a well-formed identifier: a letter or
// underscore followed by letters, digits or underscores.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var reservedWords = map[string]bool{
	"fun": true,
	"let": true,
	"in":  true,
}

// IsIdentifier reports whether name is a well-formed, non-reserved identifier.
func IsIdentifier(name string) bool {
	return identifierPattern.MatchString(name) && !reservedWords[name]
}

// Term is the building block of the surface language: a variable reference,
// an application, a single-parameter abstraction, or a non-recursive let.
//
// Terms are immutable once constructed. A pass that needs a different shape
// builds a new Term out of existing sub-terms rather than mutating in place,
// so sub-terms may be shared between multiple parents without risk.
type Term interface {
	// Marker method, so only types in this package satisfy Term.
	isTerm()

	// String renders the term using the surface grammar the parse package reads.
	String() string

	// Equals reports deep structural equality.
	Equals(Term) bool
}

// Var is a reference to a binding in scope.
type Var struct {
	Name string
}

func (Var) isTerm() {}

// String implements Term.
func (v Var) String() string { return v.Name }

// Equals implements Term.
func (v Var) Equals(t Term) bool {
	o, ok := t.(Var)
	return ok && v.Name == o.Name
}

// App is the application of one term to another.
type App struct {
	Func Term
	Arg  Term
}

func (App) isTerm() {}

// String implements Term.
func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Func, a.Arg)
}

// Equals implements Term.
func (a App) Equals(t Term) bool {
	o, ok := t.(App)
	return ok && a.Func.Equals(o.Func) && a.Arg.Equals(o.Arg)
}

// Abs is a single-parameter abstraction; multi-parameter surface syntax is
// desugared by the parser into nested Abs values.
type Abs struct {
	Param string
	Body  Term
}

func (Abs) isTerm() {}

// String implements Term.
func (a Abs) String() string {
	return fmt.Sprintf("(fun %s -> %s)", a.Param, a.Body)
}

// Equals implements Term.
func (a Abs) Equals(t Term) bool {
	o, ok := t.(Abs)
	return ok && a.Param == o.Param && a.Body.Equals(o.Body)
}

// Let is a non-recursive local binding: Name is bound in Body, not in Value.
type Let struct {
	Name  string
	Value Term
	Body  Term
}

func (Let) isTerm() {}

// String implements Term.
func (l Let) String() string {
	return fmt.Sprintf("(let %s = %s in %s)", l.Name, l.Value, l.Body)
}

// Equals implements Term.
func (l Let) Equals(t Term) bool {
	o, ok := t.(Let)
	return ok && l.Name == o.Name && l.Value.Equals(o.Value) && l.Body.Equals(o.Body)
}

// Declaration binds a top-level name to a term.
type Declaration struct {
	Name  string
	Value Term
}

// Program is an ordered sequence of declarations; order is preserved
// end-to-end from parsing through code generation.
type Program []Declaration
