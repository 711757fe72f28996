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

import (
	"bitbucket.org/creachadair/stringset"
	"github.com/susisu/lambda2ts-go/ast"
)

// Mangle walks the Let spine of t, renaming any Let-bound name that
// collides with one already in env to Fresh(env, name). It runs last in
// the normalisation cascade, after NormalizeApp, NormalizeAbs and
// NormalizeLet have settled the term's shape.
//
// The environment gains the *original* (pre-rename) name, not the
// freshened one, so a second collision on the same original name is
// judged against the first occurrence rather than against its
// replacement. Names along the spine are therefore not always unique:
// when one name is bound three or more times, every occurrence after the
// first is renamed to the same fresh name.
func Mangle(t ast.Term, env stringset.Set) ast.Term {
	let, ok := t.(ast.Let)
	if !ok {
		return t
	}
	newName := let.Name
	if env.Contains(let.Name) {
		newName = Fresh(env, let.Name)
	}
	newEnv := env.Clone()
	newEnv.Add(let.Name)
	return ast.Let{
		Name:  newName,
		Value: let.Value,
		Body:  Mangle(ast.Subst(let.Body, let.Name, ast.Var{Name: newName}), newEnv),
	}
}
