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

// Package transform implements the cascade of capture-avoiding
// normalisation passes that rewrites an arbitrary ast.Term into the
// restricted "emit normal form" the generator package expects.
package transform

import (
	"fmt"

	"bitbucket.org/creachadair/stringset"
)

// Fresh returns an identifier not in env. If prefix is not in env, Fresh
// returns prefix itself. Otherwise it returns prefix0, prefix1, ... for the
// smallest non-negative suffix not in env.
func Fresh(env stringset.Set, prefix string) string {
	if !env.Contains(prefix) {
		return prefix
	}
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s%d", prefix, i)
		if !env.Contains(candidate) {
			return candidate
		}
	}
}
