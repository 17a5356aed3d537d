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

// Package unixpatch applies unified diffs using the unix patch tool.
//
// It validates generated diffs against an independent implementation and is
// only used by tests and the eval harness.
package unixpatch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Patch applies the unified diff to orig by invoking patch(1) and returns the
// patched content. The diff must end with a newline, patch rejects it as
// garbage otherwise.
func Patch(orig, diff string) (string, error) {
	// patch doesn't create an output file for an empty diff.
	if diff == "" {
		return orig, nil
	}

	dir, err := os.MkdirTemp("", "unixpatch-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	origfile := filepath.Join(dir, "orig")
	outfile := filepath.Join(dir, "out")
	if err := os.WriteFile(origfile, []byte(orig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write original file: %v", err)
	}

	cmd := exec.Command("patch", "-u", "-o", outfile, origfile)
	cmd.Stdin = strings.NewReader(diff)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to run %s: %v\n%s", strings.Join(cmd.Args, " "), err, out)
	}

	out, err := os.ReadFile(outfile)
	if err != nil {
		return "", fmt.Errorf("failed to read patched file: %v", err)
	}
	return string(out), nil
}
