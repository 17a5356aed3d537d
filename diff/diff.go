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

package diff

import (
	"slices"

	"github.com/cahyasetya/tools/internal/config"
	"github.com/cahyasetya/tools/internal/editvec"
	"github.com/cahyasetya/tools/internal/myers"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // Two slice elements are equal
	Delete           // A deletion of an element from the left slice
	Insert           // An insertion of an element from the right slice
)

// Edit describes a single edit of a diff in terms of positions in the input slices.
//
//   - For Equal, X and Y are the positions of the two equal elements in x and y.
//   - For Delete, X is the position of the deleted element in x and Y is -1.
//   - For Insert, Y is the position of the inserted element in y and X is -1.
//
// Reading the Equal and Delete edits of an edit script in order visits every position of x
// exactly once, reading the Equal and Insert edits visits every position of y exactly once.
type Edit struct {
	Op   Op
	X, Y int
}

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	PosX, EndX int    // Start and end position in x.
	PosY, EndY int    // Start and end position in y.
	Edits      []Edit // Edits to transform x[PosX:EndX] to y[PosY:EndY]
}

// Hunks compares the contents of x and y and returns the changes necessary to convert from one
// to the other.
//
// The output is a sequence of hunks. A hunk represents a contiguous block of changes (insertions
// and deletions) along with some surrounding context. The amount of context can be configured
// using [Context]. Two blocks of changes separated by more than twice the context end up in
// separate hunks, anything closer together is merged into a single hunk.
//
// If x and y are identical, the output has length zero.
//
// The following option is supported: [Context]
//
// The result is minimal and deterministic, but the exact placement of edits in ambiguous cases
// is implementation-defined and may change between minor version upgrades. DO NOT rely on the
// output being stable across versions.
func Hunks[T comparable](x, y []T, opts ...Option) []Hunk {
	cfg := config.FromOptions(opts, config.Context)
	del, ins := myers.Diff(x, y)
	return hunks(del, ins, cfg.Context)
}

func hunks(del, ins []bool, context int) []Hunk {
	// Compute the number of hunks and edits first, this is relatively cheap and allows us to
	// preallocate the return values.
	var nhunks, nedits int
	for sp := range editvec.Spans(del, ins, context) {
		nhunks++
		nedits += sp.Ops
	}
	if nhunks == 0 {
		return nil
	}

	eout := make([]Edit, 0, nedits)
	hout := make([]Hunk, 0, nhunks)
	for sp := range editvec.Spans(del, ins, context) {
		for i, j := sp.X0, sp.Y0; i < sp.X1 || j < sp.Y1; {
			for i < sp.X1 && del[i] {
				eout = append(eout, Edit{Op: Delete, X: i, Y: -1})
				i++
			}
			for j < sp.Y1 && ins[j] {
				eout = append(eout, Edit{Op: Insert, X: -1, Y: j})
				j++
			}
			for i < sp.X1 && j < sp.Y1 && !del[i] && !ins[j] {
				eout = append(eout, Edit{Op: Equal, X: i, Y: j})
				i++
				j++
			}
		}
		hout = append(hout, Hunk{
			PosX:  sp.X0,
			EndX:  sp.X1,
			PosY:  sp.Y0,
			EndY:  sp.Y1,
			Edits: slices.Clip(eout),
		})
		eout = eout[len(eout):]
	}
	return hout
}

// Edits compares the contents of x and y and returns the changes necessary to convert from one
// to the other.
//
// Edits returns one edit for every element in the input slices. If x and y are identical, the
// output consists of an equal edit for every input element. Within a block of changes, deletions
// are emitted before insertions.
//
// The result is minimal and deterministic, but the exact placement of edits in ambiguous cases
// is implementation-defined and may change between minor version upgrades. DO NOT rely on the
// output being stable across versions.
func Edits[T comparable](x, y []T) []Edit {
	del, ins := myers.Diff(x, y)
	return edits(del, ins)
}

func edits(del, ins []bool) []Edit {
	// Compute the number of edits, this is relatively cheap and allows us to preallocate the
	// return value.
	n, m := len(del)-1, len(ins)-1
	var nedits int
	for i, j := 0, 0; i < n || j < m; {
		for i < n && del[i] {
			nedits++
			i++
		}
		for j < m && ins[j] {
			nedits++
			j++
		}
		for i < n && j < m && !del[i] && !ins[j] {
			nedits++
			i++
			j++
		}
	}
	if nedits == 0 {
		return nil
	}

	eout := make([]Edit, 0, nedits)
	for i, j := 0, 0; i < n || j < m; {
		for i < n && del[i] {
			eout = append(eout, Edit{Op: Delete, X: i, Y: -1})
			i++
		}
		for j < m && ins[j] {
			eout = append(eout, Edit{Op: Insert, X: -1, Y: j})
			j++
		}
		for i < n && j < m && !del[i] && !ins[j] {
			eout = append(eout, Edit{Op: Equal, X: i, Y: j})
			i++
			j++
		}
	}
	return eout
}
