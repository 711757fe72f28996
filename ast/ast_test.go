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

import (
	"testing"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/go-cmp/cmp"
)

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"x", true},
		{"_foo", true},
		{"foo_bar123", true},
		{"", false},
		{"1foo", false},
		{"foo-bar", false},
		{"fun", false},
		{"let", false},
		{"in", false},
	}
	for _, test := range tests {
		if got := IsIdentifier(test.name); got != test.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestFreeVarsVar(t *testing.T) {
	term := Var{"x"}
	want := stringset.New("x")
	if got := FreeVars(term); !got.Equals(want) {
		t.Errorf("FreeVars(%v) = %v, want %v", term, got, want)
	}
}

func TestFreeVarsApp(t *testing.T) {
	term := App{Var{"x"}, Var{"y"}}
	want := stringset.New("x", "y")
	if got := FreeVars(term); !got.Equals(want) {
		t.Errorf("FreeVars(%v) = %v, want %v", term, got, want)
	}
}

func TestFreeVarsAbs(t *testing.T) {
	term := Abs{"x", App{Var{"x"}, Var{"y"}}}
	want := stringset.New("y")
	if got := FreeVars(term); !got.Equals(want) {
		t.Errorf("FreeVars(%v) = %v, want %v", term, got, want)
	}
}

func TestFreeVarsLet(t *testing.T) {
	term := Let{"x", Var{"y"}, App{Var{"x"}, Var{"z"}}}
	want := stringset.New("y", "z")
	if got := FreeVars(term); !got.Equals(want) {
		t.Errorf("FreeVars(%v) = %v, want %v", term, got, want)
	}

	// value shadows nothing: a free "x" in value is still free even though
	// body's "x" is bound by the let.
	term = Let{"x", Var{"x"}, App{Var{"x"}, Var{"y"}}}
	want = stringset.New("x", "y")
	if got := FreeVars(term); !got.Equals(want) {
		t.Errorf("FreeVars(%v) = %v, want %v", term, got, want)
	}
}

func TestSubstVar(t *testing.T) {
	term := Var{"x"}
	substTerm := App{Var{"y"}, Var{"z"}}
	if diff := cmp.Diff(Term(substTerm), Subst(term, "x", substTerm)); diff != "" {
		t.Errorf("Subst mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Term(term), Subst(term, "y", substTerm)); diff != "" {
		t.Errorf("Subst mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstApp(t *testing.T) {
	term := App{Var{"x"}, Var{"y"}}
	substTerm := Var{"z"}

	want := App{Var{"z"}, Var{"y"}}
	if diff := cmp.Diff(Term(want), Subst(term, "x", substTerm)); diff != "" {
		t.Errorf("Subst mismatch (-want +got):\n%s", diff)
	}

	want = App{Var{"x"}, Var{"z"}}
	if diff := cmp.Diff(Term(want), Subst(term, "y", substTerm)); diff != "" {
		t.Errorf("Subst mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstAbs(t *testing.T) {
	term := Abs{"x", App{Var{"x"}, Var{"y"}}}
	substTerm := Var{"z"}

	// substituting the bound name leaves the term unchanged
	if diff := cmp.Diff(Term(term), Subst(term, "x", substTerm)); diff != "" {
		t.Errorf("Subst mismatch (-want +got):\n%s", diff)
	}

	want := Abs{"x", App{Var{"x"}, Var{"z"}}}
	if diff := cmp.Diff(Term(want), Subst(term, "y", substTerm)); diff != "" {
		t.Errorf("Subst mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstLet(t *testing.T) {
	term := Let{"x", App{Var{"x"}, Var{"y"}}, App{Var{"x"}, Var{"y"}}}
	substTerm := Var{"z"}

	want := Let{"x", App{Var{"z"}, Var{"y"}}, App{Var{"x"}, Var{"y"}}}
	if diff := cmp.Diff(Term(want), Subst(term, "x", substTerm)); diff != "" {
		t.Errorf("Subst mismatch (-want +got):\n%s", diff)
	}

	want = Let{"x", App{Var{"x"}, Var{"z"}}, App{Var{"x"}, Var{"z"}}}
	if diff := cmp.Diff(Term(want), Subst(term, "y", substTerm)); diff != "" {
		t.Errorf("Subst mismatch (-want +got):\n%s", diff)
	}
}
