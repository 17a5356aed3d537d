// Package benchmarks compares the line differ against other Go diff
// libraries on shared inputs.
package benchmarks

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/cahyasetya/tools/textdiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Impl adapts one diff library to a common line-diff interface.
type Impl struct {
	Name string
	Diff func(x, y string) string
}

var Impls = []Impl{
	{
		Name: "ctools",
		Diff: func(x, y string) string {
			return textdiff.Unified(textdiff.SplitLines(x), textdiff.SplitLines(y))
		},
	},
	{
		Name: "ctools-indent",
		Diff: func(x, y string) string {
			return textdiff.Unified(textdiff.SplitLines(x), textdiff.SplitLines(y), textdiff.IndentHeuristic())
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y string) string {
			return string(gointernal.Diff("x", []byte(x), "y", []byte(y)))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(x, y)
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var sb strings.Builder
			for _, d := range diffs {
				var prefix string
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				case diffmatchpatch.DiffEqual:
					prefix = " "
				}
				for _, line := range strings.SplitAfter(d.Text, "\n") {
					if line == "" {
						continue
					}
					sb.WriteString(prefix)
					sb.WriteString(line)
				}
			}
			return sb.String()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			return godebug.Diff(x, y)
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			d := mb0lines{
				x: strings.SplitAfter(x, "\n"),
				y: strings.SplitAfter(y, "\n"),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var sb strings.Builder
			a, b := 0, 0
			for _, ch := range changes {
				for a < ch.A {
					sb.WriteString(" ")
					sb.WriteString(d.x[a])
					a++
					b++
				}
				for i := range ch.Del {
					sb.WriteString("-")
					sb.WriteString(d.x[ch.A+i])
					a++
				}
				for i := range ch.Ins {
					sb.WriteString("+")
					sb.WriteString(d.y[ch.B+i])
					b++
				}
			}
			for a < len(d.x) {
				sb.WriteString(" ")
				sb.WriteString(d.x[a])
				a++
			}
			return sb.String()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y string) string {
			return udiff.Unified("x", "y", x, y)
		},
	},
}

type mb0lines struct {
	x []string
	y []string
}

func (d mb0lines) Equal(i, j int) bool { return d.x[i] == d.y[j] }
