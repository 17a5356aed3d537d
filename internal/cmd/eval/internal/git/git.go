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

// Package git provides a minimal read-only git interface for harvesting file
// changes from a repository's history.
package git

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// zeroID is the object id git uses for the missing side of an addition or
// deletion.
const zeroID = "0000000000000000000000000000000000000000"

// batchSize limits how many requests are in flight per cat-file flush.
const batchSize = 32

// Repo reads commits and file contents from a local git repository. File
// contents are read through a single long-running `git cat-file` process, so
// reads are cheap enough to stream a whole history through.
type Repo struct {
	dir  string
	cmd  *exec.Cmd
	reqs chan blobRequest
	done chan struct{}
}

func Open(dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	r := &Repo{
		dir:  dir,
		reqs: make(chan blobRequest),
		done: make(chan struct{}),
	}
	if err := r.startBlobReader(); err != nil {
		return nil, err
	}
	return r, nil
}

// Close flushes all pending reads, waits for their callbacks to return, and
// shuts down the cat-file process.
func (r *Repo) Close() error {
	close(r.reqs)
	<-r.done
	return r.cmd.Wait()
}

// RevList returns the ids of all non-merge commits reachable from HEAD.
func (r *Repo) RevList() ([]string, error) {
	out, err := git("-C", r.dir, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	revs := strings.Split(out, "\n")
	if revs[len(revs)-1] == "" {
		revs = revs[:len(revs)-1]
	}
	return revs, nil
}

// FileDiff describes one file changed by a commit. For additions OldID is the
// zero id, for deletions NewID is.
type FileDiff struct {
	Path  string
	OldID string
	NewID string
}

// DiffTree returns the files changed by a commit relative to its parent.
func (r *Repo) DiffTree(commit string) ([]FileDiff, error) {
	out, err := git("-C", r.dir, "diff-tree", "-r", commit)
	if err != nil {
		return nil, err
	}
	// The first line repeats the commit id, every following line is one file.
	lines := strings.Split(out, "\n")[1:]
	ret := make([]FileDiff, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		if line[0] != ':' {
			return nil, fmt.Errorf("diff-tree line not starting with ':': %q", line)
		}
		fields := strings.Fields(line[1:])
		if len(fields) < 6 {
			return nil, fmt.Errorf("malformed diff-tree line: %q", line)
		}
		ret = append(ret, FileDiff{
			Path:  fields[5],
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return ret, nil
}

// ReadPair reads the contents of both sides of a file change and calls cb with
// them. A zero id reads as the empty string. Reads are batched and processed
// asynchronously; cb runs on the reader goroutine and must not call back into
// the repository.
func (r *Repo) ReadPair(oldID, newID string, cb func(x, y string)) {
	r.reqs <- blobRequest{oldID: oldID, newID: newID, cb: cb}
}

func git(args ...string) (string, error) {
	var stdout, stderr strings.Builder
	cmd := exec.Command("git", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %v: %v\n%s", cmd, err, stderr.String())
	}
	return stdout.String(), nil
}

type blobRequest struct {
	oldID, newID string
	cb           func(x, y string)
}

// startBlobReader starts a `git cat-file --batch-command` process and two
// goroutines: one that batches incoming requests and writes them to the
// process, and one that matches up the responses and runs the callbacks.
// Protocol violations indicate a broken repository or a git version we don't
// understand and are reported by panicking.
func (r *Repo) startBlobReader() error {
	r.cmd = exec.Command("git", "-C", r.dir, "cat-file", "--batch-command", "--buffer")
	in, err := r.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("connecting stdin: %v", err)
	}
	out, err := r.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("connecting stdout: %v", err)
	}
	var stderr bytes.Buffer
	r.cmd.Stderr = &stderr
	if err := r.cmd.Start(); err != nil {
		return fmt.Errorf("starting git cat-file: %v", err)
	}

	pending := make(chan []blobRequest, runtime.GOMAXPROCS(0))

	go func() {
		defer close(pending)
		defer in.Close()
		w := bufio.NewWriter(in)
		for req := range r.reqs {
			bundle := append(make([]blobRequest, 0, batchSize), req)
		drain:
			for len(bundle) < batchSize {
				select {
				case more, ok := <-r.reqs:
					if !ok {
						break drain
					}
					bundle = append(bundle, more)
				default:
					break drain
				}
			}
			for _, b := range bundle {
				for _, id := range [...]string{b.oldID, b.newID} {
					if id == zeroID {
						continue
					}
					if _, err := fmt.Fprintf(w, "contents %s\n", id); err != nil {
						panic(fmt.Sprintf("writing to git cat-file: %v", err))
					}
				}
			}
			if _, err := w.WriteString("flush\n"); err != nil {
				panic(fmt.Sprintf("writing to git cat-file: %v", err))
			}
			if err := w.Flush(); err != nil {
				panic(fmt.Sprintf("writing to git cat-file: %v", err))
			}
			pending <- bundle
		}
	}()

	go func() {
		defer close(r.done)
		br := bufio.NewReader(out)
		for bundle := range pending {
			for _, req := range bundle {
				var x, y string
				if req.oldID != zeroID {
					x = readBlob(br, req.oldID)
				}
				if req.newID != zeroID {
					y = readBlob(br, req.newID)
				}
				req.cb(x, y)
			}
		}
	}()

	return nil
}

// readBlob reads one `<id> <type> <size>` response header and the blob content
// that follows it, including the LF cat-file appends after the content.
func readBlob(r *bufio.Reader, id string) string {
	line, err := r.ReadString('\n')
	if err != nil {
		panic(fmt.Sprintf("reading from git cat-file: %v", err))
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		panic(fmt.Sprintf("unexpected cat-file response: %q", line))
	}
	if fields[0] != id {
		panic(fmt.Sprintf("cat-file response for %s, want %s", fields[0], id))
	}
	n, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		panic(fmt.Sprintf("bad size in cat-file response %q: %v", line, err))
	}
	buf := make([]byte, n+1)
	if _, err := io.ReadFull(r, buf); err != nil {
		panic(fmt.Sprintf("reading from git cat-file: %v", err))
	}
	return string(buf[:n])
}
