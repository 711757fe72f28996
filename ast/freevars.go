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

import "bitbucket.org/creachadair/stringset"

// FreeVars returns the set of identifiers that occur as a Var in t outside
// the scope of any binding for them. Let binds Name in Body only, not in
// Value; Abs binds Param in Body.
func FreeVars(t Term) stringset.Set {
	switch t := t.(type) {
	case Var:
		return stringset.New(t.Name)
	case App:
		return FreeVars(t.Func).Union(FreeVars(t.Arg))
	case Abs:
		fvs := FreeVars(t.Body).Clone()
		fvs.Discard(t.Param)
		return fvs
	case Let:
		fvs := FreeVars(t.Body).Clone()
		fvs.Discard(t.Name)
		return FreeVars(t.Value).Union(fvs)
	default:
		panic("ast: unhandled Term variant in FreeVars")
	}
}
