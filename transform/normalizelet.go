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

// NormalizeLet right-rotates nested lets so that no Let appears in the
// value position of another Let (pass C). It assumes its input is already
// app-normal and abs-normal (NormalizeApp then NormalizeAbs's output), so
// the only Let values that can still be Let are Lets themselves.
func NormalizeLet(t ast.Term) ast.Term {
	switch t := t.(type) {
	case ast.Var:
		return t
	case ast.App:
		// Assumed already app-normal.
		return t
	case ast.Abs:
		// Assumed already abs-normal.
		return t
	case ast.Let:
		switch value := t.Value.(type) {
		case ast.Var, ast.App, ast.Abs:
			return ast.Let{Name: t.Name, Value: value, Body: NormalizeLet(t.Body)}
		case ast.Let:
			if IsLetNormal(value.Value) {
				newName := value.Name
				if value.Name == t.Name {
					innerBodyFvs := ast.FreeVars(value.Body)
					newName = Fresh(innerBodyFvs, value.Name)
				}
				return ast.Let{
					Name:  newName,
					Value: value.Value,
					Body: NormalizeLet(ast.Let{
						Name:  t.Name,
						Value: ast.Subst(value.Body, value.Name, ast.Var{Name: newName}),
						Body:  t.Body,
					}),
				}
			}
			return NormalizeLet(ast.Let{
				Name:  t.Name,
				Value: NormalizeLet(value),
				Body:  t.Body,
			})
		default:
			panic("transform: unhandled Term variant in NormalizeLet")
		}
	default:
		panic("transform: unhandled Term variant in NormalizeLet")
	}
}
