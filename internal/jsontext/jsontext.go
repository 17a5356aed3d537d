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

// Package jsontext normalizes JSON documents for display and comparison.
package jsontext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cahyasetya/tools/textdiff"
)

const indent = "  "

// Beautify pretty-prints a JSON document with two-space indentation. The
// order of object members and the textual form of numbers are preserved.
func Beautify(input string) (string, error) {
	src := strings.TrimSpace(input)
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(src), "", indent); err != nil {
		return "", describeError(err)
	}
	return buf.String(), nil
}

// CanonicalLines parses a JSON document and re-encodes it into a canonical
// form: object members are sorted by key, indentation is two spaces, and no
// HTML escaping is applied. The result is split into lines so that two
// equivalent documents produce identical line slices regardless of member
// order or whitespace.
//
// Numbers are carried through as [json.Number] to avoid rounding values that
// don't fit into a float64.
func CanonicalLines(input string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, describeError(err)
	}
	// Decode stops after the first value, anything but whitespace after it is
	// an error.
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("invalid JSON: unexpected data after top-level value")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode canonical JSON: %v", err)
	}
	return textdiff.SplitLines(buf.String()), nil
}

func describeError(err error) error {
	if errors.Is(err, io.EOF) {
		return errors.New("invalid JSON: unexpected end of input")
	}
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		return fmt.Errorf("invalid JSON at offset %d: %v", serr.Offset, serr)
	}
	return fmt.Errorf("invalid JSON: %v", err)
}
