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

// NormalizeAbs pushes abstractions inside over let, lambda-lifting each
// let found directly under a binder out to a surrounding let (pass B).
// It assumes its input is already app-normal (NormalizeApp's output).
func NormalizeAbs(t ast.Term) ast.Term {
	switch t := t.(type) {
	case ast.Var:
		return t
	case ast.App:
		// Assumed already app-normal; applications contain no Abs/Let.
		return t
	case ast.Abs:
		switch body := t.Body.(type) {
		case ast.Var, ast.App:
			return t
		case ast.Abs:
			if IsAbsNormal(body) {
				return t
			}
			return NormalizeAbs(ast.Abs{Param: t.Param, Body: NormalizeAbs(body)})
		case ast.Let:
			letValueFvs := ast.FreeVars(body.Value)
			newLetName := body.Name
			if body.Name == t.Param {
				letBodyFvs := ast.FreeVars(body.Body)
				newLetName = Fresh(letBodyFvs, body.Name)
			}
			if letValueFvs.Contains(t.Param) {
				return ast.Let{
					Name:  newLetName,
					Value: NormalizeAbs(ast.Abs{Param: t.Param, Body: body.Value}),
					Body: NormalizeAbs(ast.Abs{
						Param: t.Param,
						Body: ast.Subst(body.Body, body.Name, ast.App{
							Func: ast.Var{Name: newLetName},
							Arg:  ast.Var{Name: t.Param},
						}),
					}),
				}
			}
			return ast.Let{
				Name:  newLetName,
				Value: NormalizeAbs(body.Value),
				Body: NormalizeAbs(ast.Abs{
					Param: t.Param,
					Body:  ast.Subst(body.Body, body.Name, ast.Var{Name: newLetName}),
				}),
			}
		default:
			panic("transform: unhandled Term variant in NormalizeAbs")
		}
	case ast.Let:
		return ast.Let{Name: t.Name, Value: NormalizeAbs(t.Value), Body: NormalizeAbs(t.Body)}
	default:
		panic("transform: unhandled Term variant in NormalizeAbs")
	}
}
