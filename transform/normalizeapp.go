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

package transform

import "github.com/susisu/lambda2ts-go/ast"

// NormalizeApp hoists every Abs and Let that appears in function or
// argument position of an App out to a surrounding Let, so that every App
// in the result is built entirely out of Var and App. It is the first
// pass of the normalisation cascade; see Term.
func NormalizeApp(t ast.Term) ast.Term {
	switch t := t.(type) {
	case ast.Var:
		return t
	case ast.App:
		if !IsAppNormal(t.Func) {
			switch f := t.Func.(type) {
			case ast.Var, ast.App:
				return NormalizeApp(ast.App{Func: NormalizeApp(f), Arg: t.Arg})
			case ast.Abs:
				argFvs := ast.FreeVars(t.Arg)
				v := Fresh(argFvs, "v")
				return ast.Let{
					Name:  v,
					Value: ast.Abs{Param: f.Param, Body: NormalizeApp(f.Body)},
					Body:  NormalizeApp(ast.App{Func: ast.Var{Name: v}, Arg: t.Arg}),
				}
			case ast.Let:
				argFvs := ast.FreeVars(t.Arg)
				body := f.Body
				name := f.Name
				if argFvs.Contains(name) {
					newName := Fresh(argFvs, name)
					body = ast.Subst(body, name, ast.Var{Name: newName})
					name = newName
				}
				return ast.Let{
					Name:  name,
					Value: NormalizeApp(f.Value),
					Body:  NormalizeApp(ast.App{Func: body, Arg: t.Arg}),
				}
			default:
				panic("transform: unhandled Term variant in NormalizeApp")
			}
		} else if !IsAppNormal(t.Arg) {
			switch a := t.Arg.(type) {
			case ast.Var, ast.App:
				return NormalizeApp(ast.App{Func: t.Func, Arg: NormalizeApp(a)})
			case ast.Abs:
				funcFvs := ast.FreeVars(t.Func)
				v := Fresh(funcFvs, "v")
				return ast.Let{
					Name:  v,
					Value: ast.Abs{Param: a.Param, Body: NormalizeApp(a.Body)},
					Body:  ast.App{Func: t.Func, Arg: ast.Var{Name: v}},
				}
			case ast.Let:
				funcFvs := ast.FreeVars(t.Func)
				body := a.Body
				name := a.Name
				if funcFvs.Contains(name) {
					newName := Fresh(funcFvs, name)
					body = ast.Subst(body, name, ast.Var{Name: newName})
					name = newName
				}
				return ast.Let{
					Name:  name,
					Value: NormalizeApp(a.Value),
					Body:  NormalizeApp(ast.App{Func: t.Func, Arg: body}),
				}
			default:
				panic("transform: unhandled Term variant in NormalizeApp")
			}
		}
		return t
	case ast.Abs:
		return ast.Abs{Param: t.Param, Body: NormalizeApp(t.Body)}
	case ast.Let:
		return ast.Let{Name: t.Name, Value: NormalizeApp(t.Value), Body: NormalizeApp(t.Body)}
	default:
		panic("transform: unhandled Term variant in NormalizeApp")
	}
}
