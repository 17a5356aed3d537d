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

package myers

import (
	"github.com/cahyasetya/tools/internal/editvec"
)

// Diff compares the contents of x and y and returns edit vectors describing the changes
// necessary to convert one into the other: del[i] marks x[i] as deleted, ins[j] marks y[j] as
// inserted, everything else pairs up as matches in order.
//
// The result is a minimal edit script and deterministic: the same inputs always produce the
// same vectors.
func Diff[T comparable](x, y []T) (del, ins []bool) {
	imin, jmin := 0, 0
	imax, jmax := len(x), len(y)

	// Strip common prefix.
	for imin < imax && jmin < jmax && x[imin] == y[jmin] {
		imin++
		jmin++
	}

	// Strip common suffix.
	for imax > imin && jmax > jmin && x[imax-1] == y[jmax-1] {
		imax--
		jmax--
	}

	del, ins = editvec.Make(x, y)

	// Handle trivial cases without doing anything extra.
	switch {
	case imin != imax && jmin == jmax:
		for i := imin; i < imax; i++ {
			del[i] = true
		}
		return del, ins
	case imin == imax && jmin != jmax:
		for j := jmin; j < jmax; j++ {
			ins[j] = true
		}
		return del, ins
	case imin == imax && jmin == jmax:
		return del, ins
	}

	// Reduce the problem size by resolving all elements that occur in only one of the two
	// inputs up front: those can never be part of a match and are always deletions or
	// insertions respectively. In practice large diffs have many such elements, so this
	// reduction speeds them up dramatically.
	//
	// While we're at it, assign an integer id to every element that occurs in both inputs to
	// use for comparisons during the search:
	//
	//   - scan x and assign a negative id to every distinct element of x
	//   - scan y and flip the sign for every element that also occurs in y
	//
	// Afterwards an id > 0 means the element occurs in both inputs; an id <= 0 means it occurs
	// in only one of them.
	ids := make(map[T]int, imax-imin)
	for i := imin; i < imax; i++ {
		if ids[x[i]] == 0 {
			ids[x[i]] = -(len(ids) + 1)
		}
	}
	ny := 0
	for j := jmin; j < jmax; j++ {
		if id := ids[y[j]]; id < 0 {
			ids[y[j]] = -id
			ny++
		} else if id > 0 {
			ny++
		}
	}
	nx := 0
	for i := imin; i < imax; i++ {
		if ids[x[i]] > 0 {
			nx++
		}
	}

	// Build the reduced inputs xr and yr from the shared elements and remember the original
	// position of every reduced element in xpos and ypos.
	buf := make([]int, 2*(nx+ny))
	var xr, yr, xpos, ypos []int
	xr, buf = buf[:0:nx], buf[nx:]
	yr, buf = buf[:0:ny], buf[ny:]
	xpos, buf = buf[:0:nx], buf[nx:]
	ypos, buf = buf[:0:ny], buf[ny:]
	if len(buf) != 0 && cap(buf) != 0 {
		panic("incorrect buffer split")
	}
	for i := imin; i < imax; i++ {
		if id := ids[x[i]]; id > 0 {
			xpos = append(xpos, i)
			xr = append(xr, id)
		} else {
			// Occurs only in x, always a deletion.
			del[i] = true
		}
	}
	for j := jmin; j < jmax; j++ {
		if id := ids[y[j]]; id > 0 {
			ypos = append(ypos, j)
			yr = append(yr, id)
		} else {
			// Occurs only in y, always an insertion.
			ins[j] = true
		}
	}

	// Run the search on the reduced inputs.
	var a aligner
	a.xpos, a.ypos = xpos, ypos
	a.del, a.ins = del, ins
	rimin, rimax, rjmin, rjmax := a.init(xr, yr)
	a.compare(rimin, rimax, rjmin, rjmax)

	return del, ins
}
