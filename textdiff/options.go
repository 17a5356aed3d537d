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

package textdiff

import (
	"github.com/cahyasetya/tools/diff"
	"github.com/cahyasetya/tools/internal/config"
	"github.com/cahyasetya/tools/textdiff/color"
)

// Labels sets the labels used in the file header of a unified diff for x and y respectively.
// The defaults are "x" and "y".
func Labels(x, y string) diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.LabelX = x
		cfg.LabelY = y
		return config.Labels
	}
}

// IndentHeuristic applies a heuristic to make diffs easier to read by improving the placement of
// edit boundaries.
//
// This implements a heuristic that shifts edit boundaries to align with indentation patterns,
// making the resulting diff more readable for humans. The heuristic is particularly effective with
// code and structured text.
func IndentHeuristic() diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IndentHeuristic = true
		return config.IndentHeuristic
	}
}

// TerminalColors renders the diff with ANSI terminal colors: cyan hunk headers, red deleted
// lines, and green inserted lines, mirroring the defaults of git diff. Individual colors can be
// overridden with options from [github.com/cahyasetya/tools/textdiff/color].
func TerminalColors(opts ...color.Option) diff.Option {
	return func(cfg *config.Config) config.Flag {
		cc := config.DefaultColors
		for _, opt := range opts {
			opt(&cc)
		}
		cfg.Color = &cc
		return config.Colors
	}
}
