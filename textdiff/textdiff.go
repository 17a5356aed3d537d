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

// Package textdiff provides functions to efficiently compare text line by line.
package textdiff

import (
	"strconv"
	"strings"

	"github.com/cahyasetya/tools/diff"
	"github.com/cahyasetya/tools/internal/config"
	"github.com/cahyasetya/tools/internal/editvec"
	"github.com/cahyasetya/tools/internal/indentheuristic"
	"github.com/cahyasetya/tools/internal/myers"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const reset = "\033[0m"

// SplitLines splits s into lines for line-by-line comparison: lines are separated by "\n", the
// final newline terminates the last line rather than starting a new one, and a carriage return
// before a newline is removed so that CRLF and LF inputs compare equal.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// The output starts with a file header naming both inputs (see [Labels]) followed by one block
// per hunk. Line numbers in hunk headers are 1-based and counts are always present; an empty
// range is denoted by the number of the line before it and a zero count. Output lines are joined
// with "\n" without a trailing newline. If x and y are identical, the output is the empty string.
//
// The following options are supported: [diff.Context], [Labels], [IndentHeuristic],
// [TerminalColors]
//
// Important: The exact placement of edits in ambiguous cases is deterministic but
// implementation-defined and may change with minor version upgrades. DO NOT rely on the output
// being stable across versions.
func Unified(x, y []string, opts ...diff.Option) string {
	cfg := config.FromOptions(opts, config.Context|config.Labels|config.IndentHeuristic|config.Colors)

	del, ins := myers.Diff(x, y)
	if cfg.IndentHeuristic {
		indentheuristic.Apply(x, y, del, ins)
	}

	color := cfg.Color
	if color == nil {
		color = new(config.ColorConfig)
	}

	var b strings.Builder
	for h := range editvec.Spans(del, ins, cfg.Context) {
		if b.Len() == 0 {
			writeLine(&b, "", "--- ", cfg.LabelX)
			writeLine(&b, "", "+++ ", cfg.LabelY)
		}
		header := "@@ -" + rangeText(h.X0, h.X1) + " +" + rangeText(h.Y0, h.Y1) + " @@"
		writeLine(&b, color.HunkHeader, header, "")
		for i, j := h.X0, h.Y0; i < h.X1 || j < h.Y1; {
			for i < h.X1 && del[i] {
				writeLine(&b, color.Delete, prefixDelete, x[i])
				i++
			}
			for j < h.Y1 && ins[j] {
				writeLine(&b, color.Insert, prefixInsert, y[j])
				j++
			}
			for i < h.X1 && j < h.Y1 && !del[i] && !ins[j] {
				writeLine(&b, color.Match, prefixMatch, x[i])
				i++
				j++
			}
		}
	}
	return b.String()
}

// writeLine appends one output line. The rendered diff carries no trailing newline, so the
// separator goes before every line but the first. A non-empty color code wraps the whole line
// including its prefix.
func writeLine(b *strings.Builder, code, prefix, line string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(code)
	b.WriteString(prefix)
	b.WriteString(line)
	if code != "" {
		b.WriteString(reset)
	}
}

// rangeText renders a line range in unified format. Line numbers are 1-based; an empty range is
// denoted by the number of the line before it and a zero count, for example "0,0" for an
// insertion before the first line.
func rangeText(pos, end int) string {
	n := end - pos
	start := pos + 1
	if n == 0 {
		start = pos
	}
	return strconv.Itoa(start) + "," + strconv.Itoa(n)
}
