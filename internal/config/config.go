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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks returned.
	Context int

	// LabelX and LabelY are the labels used in the file header of a rendered unified diff.
	LabelX, LabelY string

	// If set, textdiff will shift edit boundaries to align with indentation patterns.
	IndentHeuristic bool

	// If set, textdiff renders unified diffs with the ANSI escape sequences configured here.
	Color *ColorConfig
}

// ColorConfig collects the ANSI escape sequences used to color unified diff output. An empty
// string leaves the corresponding part uncolored.
type ColorConfig struct {
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
}

// Default is the default configuration.
var Default = Config{
	Context:         3,
	LabelX:          "x",
	LabelY:          "y",
	IndentHeuristic: false,
	Color:           nil,
}

// DefaultColors is the color configuration used when coloring is requested without overrides,
// mirroring the default colors of git diff.
var DefaultColors = ColorConfig{
	HunkHeader: "\033[36m",
	Match:      "",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
}

// Flag describes a single config entry. This is used to detect options being passed to functions
// that don't support them.
type Flag int

const (
	Context Flag = 1 << iota
	Labels
	IndentHeuristic
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "diff.Context"
	case Labels:
		return "textdiff.Labels"
	case IndentHeuristic:
		return "textdiff.IndentHeuristic"
	case Colors:
		return "textdiff.TerminalColors"
	default:
		panic("never reached")
	}
}
