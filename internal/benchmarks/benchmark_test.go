package benchmarks

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

type testdata struct {
	name string
	x, y string
}

func loadTestdata(t testing.TB) []testdata {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no benchmark inputs found in testdata")
	}
	var tests []testdata
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := testdata{
			name: strings.TrimSuffix(strings.TrimPrefix(filename, "testdata/"), ".test"),
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				test.x = string(f.Data)
			case "y":
				test.y = string(f.Data)
			default:
				t.Fatalf("unknown file in archive: %v", f)
			}
		}
		tests = append(tests, test)
	}
	return tests
}

func BenchmarkDiffs(b *testing.B) {
	for _, impl := range Impls {
		b.Run("impl="+impl.Name, func(b *testing.B) {
			for _, td := range loadTestdata(b) {
				b.Run("name="+td.name, func(b *testing.B) {
					for b.Loop() {
						_ = impl.Diff(td.x, td.y)
					}
					b.StopTimer()

					// The number of reported edit lines shows how close to
					// minimal each implementation's result is.
					out := impl.Diff(td.x, td.y)
					edits := 0
					for line := range strings.Lines(out) {
						if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
							edits++
						}
					}
					b.ReportMetric(float64(edits), "edits")
				})
			}
		})
	}
}
