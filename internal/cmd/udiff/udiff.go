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

// Udiff prints a unified diff of two files.
//
// Usage:
//
//	udiff [-context n] [-labels a,b] [-color] [-indent-heuristic] file1 file2
//
// The exit status is 0 when the files are identical, 1 when they differ, and
// 2 when something went wrong, following the diff tool convention.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cahyasetya/tools/diff"
	"github.com/cahyasetya/tools/textdiff"
)

var (
	contextLines    = flag.Int("context", 3, "number of context `lines` around changes")
	labels          = flag.String("labels", "", "comma-separated `pair` of labels used instead of the file names")
	color           = flag.Bool("color", false, "colorize the output for terminals")
	indentHeuristic = flag.Bool("indent-heuristic", false, "shift hunk boundaries to align with indentation")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	out, err := run(flag.Arg(0), flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "udiff: %v\n", err)
		os.Exit(2)
	}
	if out != "" {
		fmt.Println(out)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: udiff [-context n] [-labels a,b] [-color] [-indent-heuristic] file1 file2")
	flag.PrintDefaults()
}

func run(pathX, pathY string) (string, error) {
	x, err := readLines(pathX)
	if err != nil {
		return "", err
	}
	y, err := readLines(pathY)
	if err != nil {
		return "", err
	}

	labelX, labelY := pathX, pathY
	if *labels != "" {
		var ok bool
		labelX, labelY, ok = strings.Cut(*labels, ",")
		if !ok {
			return "", fmt.Errorf("invalid -labels value %q, want two comma-separated labels", *labels)
		}
	}

	opts := []diff.Option{
		diff.Context(*contextLines),
		textdiff.Labels(labelX, labelY),
	}
	if *indentHeuristic {
		opts = append(opts, textdiff.IndentHeuristic())
	}
	if *color {
		opts = append(opts, textdiff.TerminalColors())
	}
	return textdiff.Unified(x, y, opts...), nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	return textdiff.SplitLines(string(data)), nil
}
