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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/susisu/lambda2ts-go/ast"
)

func TestNormalizeAbsAlreadyNormal(t *testing.T) {
	term := ast.Abs{"x", ast.App{ast.Var{"x"}, ast.Var{"y"}}}
	if diff := cmp.Diff(ast.Term(term), NormalizeAbs(term)); diff != "" {
		t.Errorf("NormalizeAbs mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeAbsLetIndependentOfParam(t *testing.T) {
	// let-value does not depend on the abstraction's parameter: no lift of x.
	term := ast.Abs{
		Param: "x",
		Body:  ast.Let{Name: "y", Value: ast.Var{"z"}, Body: ast.Var{"y"}},
	}
	want := ast.Let{
		Name:  "y",
		Value: ast.Var{"z"},
		Body:  ast.Abs{Param: "x", Body: ast.Var{"y"}},
	}
	if diff := cmp.Diff(ast.Term(want), NormalizeAbs(term)); diff != "" {
		t.Errorf("NormalizeAbs mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeAbsLetDependsOnParam(t *testing.T) {
	term := ast.Abs{
		Param: "x",
		Body:  ast.Let{Name: "y", Value: ast.Var{"x"}, Body: ast.Var{"y"}},
	}
	want := ast.Let{
		Name:  "y",
		Value: ast.Abs{Param: "x", Body: ast.Var{"x"}},
		Body: ast.Abs{
			Param: "x",
			Body:  ast.App{ast.Var{"y"}, ast.Var{"x"}},
		},
	}
	if diff := cmp.Diff(ast.Term(want), NormalizeAbs(term)); diff != "" {
		t.Errorf("NormalizeAbs mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeAbsLetNameCollidesWithParam(t *testing.T) {
	term := ast.Abs{
		Param: "x",
		Body:  ast.Let{Name: "x", Value: ast.Var{"y"}, Body: ast.Var{"x"}},
	}
	want := ast.Let{
		Name:  "x0",
		Value: ast.Var{"y"},
		Body:  ast.Abs{Param: "x", Body: ast.Var{"x0"}},
	}
	if diff := cmp.Diff(ast.Term(want), NormalizeAbs(term)); diff != "" {
		t.Errorf("NormalizeAbs mismatch (-want +got):\n%s", diff)
	}
}
