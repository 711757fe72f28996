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

package ast

// Subst replaces every free occurrence of Var{x} in t with s.
//
// This is capture-unsafe: it does not alpha-rename binders inside t to
// avoid capturing free variables of s. Every caller that substitutes under
// a binder that might capture a free variable of s must first rename that
// binder to a fresh name (see the transform package) before calling Subst.
func Subst(t Term, x string, s Term) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == x {
			return s
		}
		return t
	case App:
		return App{Func: Subst(t.Func, x, s), Arg: Subst(t.Arg, x, s)}
	case Abs:
		if t.Param == x {
			return t
		}
		return Abs{Param: t.Param, Body: Subst(t.Body, x, s)}
	case Let:
		value := Subst(t.Value, x, s)
		if t.Name == x {
			return Let{Name: t.Name, Value: value, Body: t.Body}
		}
		return Let{Name: t.Name, Value: value, Body: Subst(t.Body, x, s)}
	default:
		panic("ast: unhandled Term variant in Subst")
	}
}
