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

// eval runs the differ over every file change in a git repository's history.
// Each resulting unified diff is applied with the unix patch tool to check
// that it reproduces the new file, and optionally timing and edit counts are
// collected into a CSV file for offline analysis.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cahyasetya/tools/diff"
	"github.com/cahyasetya/tools/internal/cmd/eval/internal/git"
	"github.com/cahyasetya/tools/internal/unixpatch"
	"github.com/cahyasetya/tools/textdiff"
)

type config struct {
	repo     string
	sample   int
	parallel int
	stats    string
	validate bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.BoolVar(&cfg.validate, "validate", true, "if validation should be performed")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// variants are the option sets evaluated per file change.
var variants = map[string][]diff.Option{
	"default":          nil,
	"indent-heuristic": {textdiff.IndentHeuristic()},
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type note struct {
	prefix string
	msg    string
}

type result struct {
	commitID string
	file     string
	variant  string
	N, M     int
	D        int
	duration time.Duration
}

func run(cfg *config) error {
	start := time.Now()
	notes := make(chan note)
	done := make(chan struct{})
	var commitsDone atomic.Int64
	var processed atomic.Int64

	var stats *os.File
	if cfg.stats != "" {
		var err error
		stats, err = os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer stats.Close()
	}

	repo, err := git.Open(cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %v", err)
	}

	commitIDs, err := repo.RevList()
	if err != nil {
		return fmt.Errorf("reading rev-list: %v", err)
	}

	// Sample commits
	if cfg.sample > 0 && cfg.sample < len(commitIDs) {
		picked := make(map[int]struct{}, cfg.sample)
		sample := make([]string, 0, cfg.sample)
		for len(sample) < cfg.sample {
			i := rand.IntN(len(commitIDs))
			if _, ok := picked[i]; ok {
				continue
			}
			sample = append(sample, commitIDs[i])
			picked[i] = struct{}{}
		}
		commitIDs = sample
	}

	// Process commits.
	type change struct {
		commitID string
		filename string
		x, y     string
	}
	changes := make(chan change)
	var changesWG sync.WaitGroup
	chunkSize := max(1, len(commitIDs)/(4*runtime.GOMAXPROCS(0)))
	for chunk := range slices.Chunk(commitIDs, chunkSize) {
		changesWG.Add(1)
		go func() {
			defer changesWG.Done()
			for _, commitID := range chunk {
				files, err := repo.DiffTree(commitID)
				if err != nil {
					notes <- note{
						prefix: commitID,
						msg:    fmt.Sprintf("error processing commit: %v", err),
					}
					continue
				}
				for _, file := range files {
					if strings.HasSuffix(file.Path, ".zip") || strings.HasSuffix(file.Path, ".syso") {
						continue
					}
					repo.ReadPair(file.OldID, file.NewID, func(x, y string) {
						changes <- change{
							commitID: commitID,
							filename: file.Path,
							x:        x,
							y:        y,
						}
					})
				}
				commitsDone.Add(1)
			}
		}()
	}

	// Process diffs.
	var processWG sync.WaitGroup
	var results chan result
	if cfg.stats != "" {
		results = make(chan result)
	}
	for range cfg.parallel {
		processWG.Add(1)
		go func() {
			defer processWG.Done()
			for change := range changes {
				// Git treats files containing a NUL byte as binary, skip those.
				if strings.IndexByte(change.x, 0) >= 0 || strings.IndexByte(change.y, 0) >= 0 {
					processed.Add(1)
					continue
				}

				xlines := textdiff.SplitLines(change.x)
				ylines := textdiff.SplitLines(change.y)
				n, m := reducedSize(xlines, ylines)

				for variant, opts := range variants {
					start := time.Now()
					unified := textdiff.Unified(xlines, ylines, opts...)
					duration := time.Since(start)

					if results != nil {
						results <- result{
							commitID: change.commitID,
							file:     change.filename,
							variant:  variant,
							N:        n,
							M:        m,
							D:        countEdits(unified),
							duration: duration,
						}
					}

					if cfg.validate && unified != "" {
						// Validation works on the split lines rather than the
						// raw file contents: the diff describes lines, so a
						// missing newline on the last line or CRLF endings
						// would otherwise show up as a mismatch.
						patched, err := unixpatch.Patch(joinLines(xlines), unified+"\n")
						if err != nil {
							notes <- note{
								prefix: change.commitID + ":" + change.filename,
								msg:    fmt.Sprintf("failed to run patch: %v", err),
							}
							continue
						}
						if want := joinLines(ylines); patched != want {
							notes <- note{
								prefix: change.commitID + ":" + change.filename,
								msg:    fmt.Sprintf("file is different after applying patch. got:\n%s\nwant:\n%s", patched, want),
							}
						}
					}
				}
				processed.Add(1)
			}
		}()
	}

	// Render progress
	var ioWG sync.WaitGroup
	render := func() {
		const width = 60
		commits := commitsDone.Load()
		processed := processed.Load()
		progress := float64(commits) / float64(len(commitIDs))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars), int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var commitsPerSec, procPerSec int
		if commits > 0 {
			commitsPerSec = int((time.Duration(commits) * time.Second) / time.Since(start))
		}
		if processed > 0 {
			procPerSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Printf("\r[%-*s] % 3.1f%% (%d commits/s, %d evals/s) ", width, bar, 100*progress, commitsPerSec, procPerSec)
	}
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Printf("\r%s: %s\n", note.prefix, note.msg)
				render()

			case <-ticker.C:
				render()

			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()
	var statsWG sync.WaitGroup
	if cfg.stats != "" {
		statsWG.Add(1)
		go func() {
			defer statsWG.Done()
			w := bufio.NewWriter(stats)
			w.WriteString("commit_id,file,variant,N,M,D,duration_ns\n")
			for result := range results {
				_, err := fmt.Fprintf(w, "%s,%s,%s,%d,%d,%d,%d\n", result.commitID, result.file, result.variant, result.N, result.M, result.D, result.duration.Nanoseconds())
				if err != nil {
					notes <- note{
						prefix: result.commitID + ":" + result.file,
						msg:    fmt.Sprintf("failed to write stats: %v", err),
					}
				}
			}
			err := w.Flush()
			if err != nil {
				notes <- note{
					prefix: "",
					msg:    fmt.Sprintf("failed to flush stats: %v", err),
				}
			}
		}()
	}

	// Shutdown. The stats writer drains before the note consumer stops so
	// that its error notes still have a receiver.
	changesWG.Wait()
	closeErr := repo.Close()
	close(changes)
	processWG.Wait()
	if results != nil {
		close(results)
	}
	statsWG.Wait()
	close(done)
	ioWG.Wait()

	if closeErr != nil {
		return fmt.Errorf("closing git repository: %v", closeErr)
	}
	return nil
}

// reducedSize returns the number of lines in x and y after stripping the
// common prefix and suffix, which is the problem size the search actually
// sees.
func reducedSize(x, y []string) (n, m int) {
	p := 0
	for p < len(x) && p < len(y) && x[p] == y[p] {
		p++
	}
	s := 0
	for s < len(x)-p && s < len(y)-p && x[len(x)-1-s] == y[len(y)-1-s] {
		s++
	}
	return len(x) - p - s, len(y) - p - s
}

// countEdits counts the deleted and inserted lines in a unified diff,
// skipping the two file header lines.
func countEdits(unified string) int {
	edits := 0
	i := 0
	for line := range strings.Lines(unified) {
		i++
		if i <= 2 {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "+") {
			edits++
		}
	}
	return edits
}

// joinLines reassembles split lines into file contents with a trailing
// newline.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
