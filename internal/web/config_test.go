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

package web

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		path := writeConfig(t, "addr: 127.0.0.1:8080\ncontext_lines: 5\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
		assert.Equal(t, 5, cfg.ContextLines)
	})

	t.Run("partial-keeps-defaults", func(t *testing.T) {
		path := writeConfig(t, "context_lines: 1\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultAddr, cfg.Addr)
		assert.Equal(t, 1, cfg.ContextLines)
	})

	t.Run("empty-is-all-defaults", func(t *testing.T) {
		path := writeConfig(t, "")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("unknown-field", func(t *testing.T) {
		path := writeConfig(t, "adress: 127.0.0.1:8080\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("not-yaml", func(t *testing.T) {
		path := writeConfig(t, "{{{")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing-file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
