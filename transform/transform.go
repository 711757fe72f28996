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

// Term runs the full cascade — mangle ∘ normalize_let ∘ normalize_abs ∘
// normalize_app — on a single term, producing emit normal form.
func Term(t ast.Term) ast.Term {
	t = NormalizeApp(t)
	t = NormalizeAbs(t)
	t = NormalizeLet(t)
	return Mangle(t, stringset.New())
}

// Program runs the cascade over every declaration's value independently,
// preserving declaration order.
func Program(p ast.Program) ast.Program {
	out := make(ast.Program, len(p))
	for i, decl := range p {
		out[i] = ast.Declaration{Name: decl.Name, Value: Term(decl.Value)}
	}
	return out
}
