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
	"crypto/sha256"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DIMDMMDMI",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MDI",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "DIM",
		},
		{
			name: "disjoint",
			x:    []string{"1", "2"},
			y:    []string{"3", "4"},
			want: "DDII",
		},
		{
			name: "largish",
			x:    strings.Split("xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaay", ""),
			y:    strings.Split("waaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaait", ""),
			want: "DIMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMDII",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			del, ins := Diff(tt.x, tt.y)
			got := render(del, ins, len(tt.x), len(tt.y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

// render serializes edit vectors into a compact form for tests: one letter per operation, D for
// deletions, I for insertions, M for matches, deletions emitted before insertions.
func render(del, ins []bool, n, m int) string {
	var sb strings.Builder
	for i, j := 0, 0; i < n || j < m; {
		if del[i] {
			sb.WriteRune('D')
			i++
		} else if ins[j] {
			sb.WriteRune('I')
			j++
		} else {
			sb.WriteRune('M')
			i++
			j++
		}
	}
	return sb.String()
}

func TestSplit(t *testing.T) {
	tests := []struct {
		inX, inY     string
		wantX, wantY string
	}{
		// The input and output of these tests are strings containing markers that define ranges.
		// For example, ab[cde]fg represents the string abcdefg and the range [2, 5]. The input
		// must always define a single range (the area of interest). The output strings carry two
		// ranges each, representing the two split areas; everything in between the two ranges is
		// the middle found by split and must be identical in both output strings.
		//
		//     inX          inY          wantX         wantY
		{"[ABCABBA]", "[CBABAC]", "[ABC]AB[BA]", "[CB]AB[AC]"},
		{"[ABC]ABBA", "[CB]ABAC", "[A]B[C]ABBA", "[C]B[]ABAC"},
		{"ABCAB[BA]", "CBAB[AC]", "ABCAB[B]A[]", "CBAB[]A[C]"},
		{"[A]BCABBA", "[C]BABAC", "[][A]BCABBA", "[C][]BABAC"},
		{"AB[C]ABBA", "CB[]ABAC", "AB[C][]ABBA", "CB[][]ABAC"},

		{"[axxxxxxxxb]", "[cxxxxxxxxd]", "[a]xxxxxxxx[b]", "[c]xxxxxxxx[d]"},
		{"[axxxyyxxxb]", "[cxxxzzxxxd]", "[axxx][yyxxxb]", "[cxxxzz][xxxd]"},
		{"[axxx]yyxxxb", "[cxxxzz]xxxd", "[a]xxx[]yyxxxb", "[c]xxx[zz]xxxd"},
		{"axxx[yyxxxb]", "cxxxzz[xxxd]", "axxx[yy]xxx[b]", "cxxxzz[]xxx[d]"},

		// For performance and simplicity, split skips the d=0 diagonal that handles matches in
		// prefixes, suffixes and fully identical inputs. These are handled at a higher level,
		// this test only makes sure that prefix and postfix are handled correctly.
		{"abcdefg[0]", "abcdefg[]", "abcdefg[0][]", "abcdefg[][]"},
		{"[0]abcdefg", "[]abcdefg", "[0][]abcdefg", "[][]abcdefg"},
		{"abcd[0]efg", "abcd[]efg", "abcd[0][]efg", "abcd[][]efg"},

		// Differently sized inputs will cause the algorithm to walk over the edge of the grid.
		// The tests below make sure that this edge condition is handled correctly.
		{"[abcdefghijklmnoparstuvzxyz]", "[x]", "[abcdefghijklm][noparstuvzxyz]", "[][x]"},
		{"[abcdefghijklmnoparstuvzxyz]", "[]", "[abcdefghijklm][noparstuvzxyz]", "[][]"},
		{"[x]", "[abcdefghijklmnoparstuvzxyz]", "[][x]", "[abcdefghijklm][noparstuvzxyz]"},
		{"[]", "[abcdefghijklmnoparstuvzxyz]", "[][]", "[abcdefghijklm][noparstuvzxyz]"},

		// We're not testing the case that both x and y are empty, because we're never going to
		// call it with an empty input.
	}

	for _, tt := range tests {
		x, imin, imax := parseSplitInput(tt.inX)
		y, jmin, jmax := parseSplitInput(tt.inY)

		var a aligner
		imin0, imax0, jmin0, jmax0 := a.init(toIDs(x), toIDs(y))
		if imin < imin0 || imax > imax0 {
			t.Fatalf("invalid test case: i outside of valid range: [%v, %v] not in [%v, %v]", imin, imax, imin0, imax0)
		}
		if jmin < jmin0 || jmax > jmax0 {
			t.Fatalf("invalid test case: j outside of valid range: [%v, %v] not in [%v, %v]", jmin, jmax, jmin0, jmax0)
		}
		if imin == imax && jmin == jmax {
			t.Fatalf("invalid test case: both ranges are empty.")
		}
		i0, i1, j0, j1 := a.split(imin, imax, jmin, jmax)

		gotX := renderSplitResult(x, imin, i0, i1, imax)
		gotY := renderSplitResult(y, jmin, j0, j1, jmax)
		if gotX != tt.wantX || gotY != tt.wantY {
			t.Errorf("splitting %v, %v -> %v, %v, want %v, %v", tt.inX, tt.inY, gotX, gotY, tt.wantX, tt.wantY)
		}

		if x[i0:i1] != y[j0:j1] {
			t.Errorf("splitting %v, %v resulted in inconsistent middle: %v != %v", tt.inX, tt.inY, x[i0:i1], y[j0:j1])
		}
	}
}

func TestSplitLargeInputs(t *testing.T) {
	for i := range 8 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			x := make([]int, 1<<12-rng.IntN(1<<8))
			for i := range x {
				x[i] = rng.IntN(10)
			}
			y := make([]int, 1<<12-rng.IntN(1<<8))
			for j := range y {
				y[j] = rng.IntN(10)
			}

			var a aligner
			imin, imax, jmin, jmax := a.init(x, y)
			i0, i1, j0, j1 := a.split(imin, imax, jmin, jmax)
			if !slices.Equal(x[i0:i1], y[j0:j1]) {
				t.Errorf("splitting resulted in non-matching middle in iteration %d, [i0=%d, i1=%d, j0=%d, j1=%d]", i, i0, i1, j0, j1)
			}
		})
	}
}

func FuzzSplit(f *testing.F) {
	f.Add([]byte("ABCABBA"), []byte("CBABAC"))
	f.Add([]byte("aaaa"), []byte("aabaa"))
	f.Fuzz(func(t *testing.T, x, y []byte) {
		var a aligner
		xr, yr := toIDs(string(x)), toIDs(string(y))
		imin, imax, jmin, jmax := a.init(xr, yr)

		if imin == imax && jmin == jmax {
			t.Skip("invalid test case: both ranges are empty (e.g. because the inputs are identical)")
		}

		i0, i1, j0, j1 := a.split(imin, imax, jmin, jmax)
		if !slices.Equal(xr[i0:i1], yr[j0:j1]) {
			t.Errorf("found a middle that didn't match: %q vs %q", x[i0:i1], y[j0:j1])
		}
	})
}

// toIDs widens a string's bytes into the integer alphabet the aligner operates on.
func toIDs(s string) []int {
	ids := make([]int, len(s))
	for i := range len(s) {
		ids[i] = int(s[i])
	}
	return ids
}

func parseSplitInput(in string) (out string, min, max int) {
	var sb strings.Builder
	sb.Grow(len(in) - 2)

	min, max = math.MinInt, math.MaxInt
	offs := 0
	for i, c := range in {
		switch c {
		case '[':
			if min != math.MinInt {
				panic("invalid split input spec: " + in)
			}
			min = i
			offs++
		case ']':
			if max != math.MaxInt {
				panic("invalid split input spec: " + in)
			}
			max = i - offs
			offs++
		default:
			sb.WriteRune(c)
		}
	}
	if min == math.MinInt || max == math.MaxInt {
		panic("invalid split input spec: " + in)
	}
	out = sb.String()
	return
}

func renderSplitResult(in string, min0, max0, min1, max1 int) string {
	var sb strings.Builder
	sb.Grow(len(in) + 4)

	for i := min(min0, 0); i < max(max1+1, len(in)); i++ {
		if min0 == i {
			sb.WriteRune('[')
		}
		if max0 == i {
			sb.WriteRune(']')
		}

		if min1 == i {
			sb.WriteRune('[')
		}
		if max1 == i {
			sb.WriteRune(']')
		}
		if i >= 0 && i < len(in) {
			sb.WriteByte(in[i])
		}

	}
	return sb.String()
}
