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

// IsAppNormal reports whether t contains no Abs and no Let anywhere in the
// tree: t is a variable, or an application of app-normal sub-terms.
func IsAppNormal(t ast.Term) bool {
	switch t := t.(type) {
	case ast.Var:
		return true
	case ast.App:
		return IsAppNormal(t.Func) && IsAppNormal(t.Arg)
	case ast.Abs:
		return false
	case ast.Let:
		return false
	default:
		panic("transform: unhandled Term variant in IsAppNormal")
	}
}

// IsAbsNormal reports whether t contains no Let anywhere in the tree.
func IsAbsNormal(t ast.Term) bool {
	switch t := t.(type) {
	case ast.Var:
		return true
	case ast.App:
		return IsAbsNormal(t.Func) && IsAbsNormal(t.Arg)
	case ast.Abs:
		return IsAbsNormal(t.Body)
	case ast.Let:
		return false
	default:
		panic("transform: unhandled Term variant in IsAbsNormal")
	}
}

// IsLetNormal is synonymous with IsAbsNormal: no Let appears anywhere. It is
// named separately because the third pass cares about a different
// *arrangement* of the same shape (no Let in value position), not a
// different shape.
func IsLetNormal(t ast.Term) bool {
	return IsAbsNormal(t)
}
