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

package editvec

import (
	"iter"
)

// Span describes a run of consecutive edits padded with up to context matches on each side.
type Span struct {
	X0, X1 int // start and end of the span in x
	Y0, Y1 int // start and end of the span in y
	Ops    int // number of operations in this span, matches included
}

// Spans groups the edits in del and ins into spans: two edit runs separated by more than
// 2*context matches end up in different spans, anything closer together is merged into one.
// Inputs without any edits produce no spans at all.
func Spans(del, ins []bool, context int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		i, j := 0, 0     // current index into x, y
		i0, j0 := -1, -1 // start of the current span, -1 when no span is in progress
		ops := 0         // number of operations in the current span
		run := 0         // number of consecutive matches
		n, m := len(del)-1, len(ins)-1
		for i < n || j < m {
			if del[i] || ins[j] {
				run = 0 // not a match, reset run counter

				// If we're not inside a span, start a new one. Leading context comes from the
				// matches we skipped over before this edit run.
				if i0 < 0 {
					i0, j0 = max(0, i-context), max(0, j-context)
					ops = i - i0
				}

				for i < n && del[i] {
					i++
					ops++
				}
				for j < m && ins[j] {
					j++
					ops++
				}
			} else {
				for i < n && j < m && !del[i] && !ins[j] {
					i++
					j++
					run++
					ops++
				}
			}
			// Active in-progress span and we've seen as many matches as we want in a context,
			// finish the span.
			if i0 >= 0 && (run > 2*context || i == n && j == m) {
				Δ := min(0, -run+context)
				if !yield(Span{i0, i + Δ, j0, j + Δ, ops + Δ}) {
					break
				}
				i0, j0 = -1, -1
			}
		}
	}
}
