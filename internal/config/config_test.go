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

package config_test

import (
	"testing"

	"github.com/cahyasetya/tools/diff"
	"github.com/cahyasetya/tools/internal/config"
	"github.com/cahyasetya/tools/textdiff"
	"github.com/google/go-cmp/cmp"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "context",
			opts: []config.Option{
				diff.Context(5),
			},
			want: config.Config{
				Context: 5,
				LabelX:  config.Default.LabelX,
				LabelY:  config.Default.LabelY,
			},
		},
		{
			name: "labels",
			opts: []config.Option{
				textdiff.Labels("a/file", "b/file"),
			},
			want: config.Config{
				Context: config.Default.Context,
				LabelX:  "a/file",
				LabelY:  "b/file",
			},
		},
		{
			name: "labels-context",
			opts: []config.Option{
				textdiff.Labels("a/file", "b/file"),
				diff.Context(5),
			},
			want: config.Config{
				Context: 5,
				LabelX:  "a/file",
				LabelY:  "b/file",
			},
		},
		{
			name: "context-override",
			opts: []config.Option{
				diff.Context(5),
				textdiff.Labels("a/file", "b/file"),
				diff.Context(1),
			},
			want: config.Config{
				Context: 1,
				LabelX:  "a/file",
				LabelY:  "b/file",
			},
		},
		{
			name: "indent-heuristic",
			opts: []config.Option{
				textdiff.IndentHeuristic(),
			},
			want: config.Config{
				Context:         config.Default.Context,
				LabelX:          config.Default.LabelX,
				LabelY:          config.Default.LabelY,
				IndentHeuristic: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Context|config.Labels|config.IndentHeuristic)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsDisallowed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FromOptions(...) with disallowed option: want panic, got none")
		}
	}()
	config.FromOptions([]config.Option{textdiff.Labels("a", "b")}, config.Context)
}
