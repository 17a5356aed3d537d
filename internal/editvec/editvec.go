// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package editvec contains functions to work with edit vectors, the internal representation
// produced by the alignment algorithm: del[i] is true iff x[i] is deleted from x and ins[j] is
// true iff y[j] is inserted into y. Positions that are neither deleted nor inserted pair up as
// matches in order. The vectors carry a one element border so that iteration code can look at
// del[i] and ins[j] without bounds checks when i == len(x) or j == len(y).
package editvec

// Make allocates a pair of edit vectors for inputs x and y with a single allocation.
func Make[T any](x, y []T) (del, ins []bool) {
	v := make([]bool, (len(x) + len(y) + 2))
	del = v[: len(x)+1 : len(x)+1]
	ins = v[len(x)+1:]
	return
}
