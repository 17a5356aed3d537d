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

// Package diff provides functions to compare two slices efficiently, similar to the Unix diff
// command line tool to compare files.
//
// [Edits] returns an edit script that describes, element by element, how to transform one slice
// into the other. [Hunks] groups the changes of an edit script into hunks of consecutive edits
// together with a configurable number of surrounding matches.
//
// The functions in this package are pure: they never modify their inputs, keep no state between
// calls, and are safe for concurrent use.
//
// Results are always minimal, that is the total number of deletions and insertions is the
// smallest number possible to describe the difference between the two inputs. The runtime is
// O(ND) where N = len(x) + len(y) and D is the number of differences, using O(N) extra space.
// For inputs with few differences, this is much faster than the classic O(N²) dynamic program.
//
// To compare text line by line and to render the result in unified format, see
// [github.com/cahyasetya/tools/textdiff].
//
// [github.com/cahyasetya/tools/textdiff]: https://pkg.go.dev/github.com/cahyasetya/tools/textdiff
package diff
