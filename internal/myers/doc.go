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

// Package myers implements sequence alignment using Myers' algorithm in its linear space
// variant (section 4b of the paper). The result is always a minimal edit script: there is no
// cost cutoff and no approximation, the runtime is O((N+M)D) where N and M are the input
// lengths and D is the number of differences.
//
// # Myers' Algorithm
//
// The algorithm is a graph search on the edit graph, the graph modelling all possible edit
// sequences that transform x into y. For x = "ABCABBA" and y = "CBABAC" the edit graph is:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A horizontal edge deletes an element of x, a vertical edge inserts an element of y, and a
// diagonal edge exists wherever the two elements are equal and represents a match. A path from
// the top left to the bottom right corner describes a complete edit sequence; an optimal diff
// corresponds to a path with the fewest non-diagonal edges.
//
// We use i and j for the horizontal and vertical coordinates and k = i - j for diagonals; the
// k = 0 diagonal starts in (0,0). A d-path is a path with exactly d non-diagonal edges. The
// relevant results from the paper, without proofs:
//
// Lemma 1: A d-path must end on a diagonal k in {-d, -d+2, ..., d-2, d}. In particular, d-paths
// end on odd diagonals when d is odd and on even diagonals when d is even.
//
// Lemma 2: The furthest reaching d-path on diagonal k is either the furthest reaching
// (d-1)-path on diagonal k-1 followed by a horizontal edge and a maximal run of diagonal edges,
// or the furthest reaching (d-1)-path on diagonal k+1 followed by a vertical edge and a maximal
// run of diagonal edges.
//
// Lemma 2 gives a greedy algorithm: iterate d upwards, keeping for every diagonal only the
// endpoint of the furthest reaching d-path (the v-array). Reconstructing the path from the
// v-arrays alone would require quadratic memory, which the linear space variant avoids:
//
// Lemma 3: There is a d-path from (0,0) to (N,M) if and only if there is a ⌈d/2⌉-path from
// (0,0) to some point (i,j) and a ⌊d/2⌋-path from some point (i',j') to (N,M) with k = k' and
// i >= i' (overlap). Moreover, both half paths are contained in d-paths from (0,0) to (N,M).
//
// Searching forwards and backwards simultaneously until the two frontiers overlap yields a
// maximal run of diagonal edges in the middle of an optimal path. Recursing into the two
// rectangles before and after that run computes the full path using memory linear in N+M.
//
// # Reduction
//
// Before running the search, [Diff] discards every element that occurs in only one of the two
// inputs: such an element can never be part of a match, so it is recorded as a deletion or
// insertion up front, and the search runs on the remaining elements only, represented as
// integer ids. For typical inputs this reduces the problem size substantially. The reduction
// preserves minimality and determinism.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
//
// The algorithm was independently discovered by Esko Ukkonen:
//
// Ukkonen, E. Algorithms for approximate string matching. Information and Control, Volume 64,
// Issues 1-3, 100-118 (1985). https://doi.org/10.1016/S0019-9958(85)80046-2
package myers
