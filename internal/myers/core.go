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
	"math"
)

// aligner holds the state of the divide-and-conquer search over the reduced inputs.
type aligner struct {
	// Reduced inputs to compare.
	x, y []int

	// v-arrays for the forwards and backwards searches. A v-array stores the endpoint of the
	// furthest reaching d-path on diagonal k in v[off+k] where off translates k in [-d, d] to an
	// index in [0, 2*d]. The endpoints only store the i-coordinate since j = i - k.
	fwd, bwd []int
	off      int

	// Maps positions in the reduced inputs back to positions in the original inputs.
	xpos, ypos []int

	// Edit vectors holding the result.
	del, ins []bool
}

func (a *aligner) init(x, y []int) (imin, imax, jmin, jmax int) {
	imin, jmin = 0, 0
	imax, jmax = len(x), len(y)

	// The reduced inputs can have a common prefix or suffix even when the original inputs don't,
	// strip them here.
	for imin < imax && jmin < jmax && x[imin] == y[jmin] {
		imin++
		jmin++
	}
	for imax > imin && jmax > jmin && x[imax-1] == y[jmax-1] {
		imax--
		jmax--
	}

	N, M := imax-imin, jmax-jmin
	diagonals := N + M
	vlen := 2*diagonals + 3    // +1 for the middle point and +2 for the borders
	buf := make([]int, 2*vlen) // allocate space for fwd and bwd with a single allocation

	a.x = x
	a.y = y
	a.fwd = buf[:vlen]
	a.bwd = buf[vlen:]
	a.off = diagonals + 1 // +1 for the middle point
	return
}

// compare finds an optimal d-path from (imin, jmin) to (imax, jmax) and records it in the edit
// vectors.
//
// Important: x[imin:imax] and y[jmin:jmax] must not have a common prefix or a common suffix.
func (a *aligner) compare(imin, imax, jmin, jmax int) {
	switch {
	case imin == imax:
		// x range is empty, therefore everything in jmin to jmax is an insertion.
		for j := jmin; j < jmax; j++ {
			a.ins[a.ypos[j]] = true
		}
	case jmin == jmax:
		// y range is empty, therefore everything in imin to imax is a deletion.
		for i := imin; i < imax; i++ {
			a.del[a.xpos[i]] = true
		}
	default:
		// Use split to divide the input into three pieces:
		//
		//   (1) a, possibly empty, rect (imin, jmin) to (i0, j0)
		//   (2) a, possibly empty, sequence of diagonals (matches) (i0, j0) to (i1, j1)
		//   (3) a, possibly empty, rect (i1, j1) to (imax, jmax)
		//
		// (1) and (3) will not have a common prefix or a common suffix, so we can use them
		// directly as inputs to compare.
		i0, i1, j0, j1 := a.split(imin, imax, jmin, jmax)

		// Recurse into (1) and (3).
		a.compare(imin, i0, jmin, j0)
		a.compare(i1, imax, j1, jmax)
	}
}

// split finds the endpoints of a, potentially empty, sequence of diagonals in the middle of an
// optimal path from (imin, jmin) to (imax, jmax).
//
// Important: x[imin:imax] and y[jmin:jmax] must not have a common prefix or a common suffix and
// they may not both be empty.
func (a *aligner) split(imin, imax, jmin, jmax int) (i0, i1, j0, j1 int) {
	N, M := imax-imin, jmax-jmin
	x, y := a.x, a.y
	fwd, bwd := a.fwd, a.bwd
	off := a.off

	// Bounds for k. Since j = i - k, we can determine the min and max for k using: k = i - j.
	kmin, kmax := imin-jmax, imax-jmin

	// In contrast to the paper, we number all diagonals with consistent k's by centering the
	// forwards and backwards searches around different midpoints. This way, we don't need to
	// convert k's when checking for overlap.
	fmid, bmid := imin-jmin, imax-jmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// We know from Lemma 1 that the optimal diff length is going to be odd or even as (N-M) is
	// odd or even. We use this below to decide when to check for path overlaps.
	odd := (N-M)%2 != 0

	// Since split is never called with a common prefix or suffix, there is no 0-path and the
	// d=0 iteration would only produce the trivial result:
	fwd[off+fmid] = imin
	bwd[off+bmid] = imax
	// Consequently, we can start at d=1 which allows us to omit special handling of d == 0 in
	// the hot k-loops below.
	//
	// We know from Lemma 3 that there's a d-path with d = ⌈(N+M)/2⌉, so we can omit the loop
	// condition and blindly increment d.
	for d := 1; ; d++ {
		// Every iteration first extends the forward frontier and then the backward frontier by
		// one edit. When the two frontiers overlap, we have found the middle of an optimal
		// path.

		// Forwards iteration.
		//
		// First determine which diagonals k to search. Searching the full k = [fmid-d, fmid+d]
		// range in steps of 2 would move outside the edit grid and would require more memory
		// and special handling for i and j coordinates outside x and y, so the frontier bounds
		// are clamped to the grid.
		//
		// The borders of the v-array are primed with sentinels so that the decision between the
		// two predecessor diagonals needs no special cases at the frontier edges (the v-arrays
		// carry two extra elements for this).
		if fmin > kmin {
			fmin--
			fwd[off+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			fwd[off+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + off // k as an index into fwd

			// According to Lemma 2 the furthest reaching d-path on diagonal k extends either
			// the furthest reaching (d-1)-path on diagonal k-1 with a horizontal edge, or the
			// one on diagonal k+1 with a vertical edge, followed by a maximal run of diagonal
			// edges. Resolving the tie in favor of k-1 prioritizes deletions over insertions.
			var i int
			if fwd[k0-1] < fwd[k0+1] {
				i = fwd[k0+1]
			} else {
				i = fwd[k0-1] + 1
			}
			j := i - k

			// Then follow the diagonals as long as possible.
			i0, j0 := i, j
			for i < imax && j < jmax && x[i] == y[j] {
				i++
				j++
			}

			// Then store the endpoint of the furthest reaching d-path.
			fwd[k0] = i

			// Check for an overlap with a backwards d-path. We're done when we found it.
			if odd && bmin <= k && k <= bmax && i >= bwd[k0] {
				return i0, i, j0, j
			}
		}

		// Backwards iteration.
		//
		// This is mostly analogous to the forwards iteration.
		if bmin > kmin {
			bmin--
			bwd[off+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			bwd[off+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + off
			var i int
			if bwd[k0-1] < bwd[k0+1] {
				i = bwd[k0-1]
			} else {
				i = bwd[k0+1] - 1
			}
			j := i - k

			i0, j0 := i, j
			for i > imin && j > jmin && x[i-1] == y[j-1] {
				i--
				j--
			}

			bwd[k0] = i

			if !odd && fmin <= k && k <= fmax && i <= fwd[k0] {
				return i, i0, j, j0
			}
		}
	}
}
