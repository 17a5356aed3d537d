package textdiff_test

import (
	"fmt"

	"github.com/cahyasetya/tools/textdiff"
)

func ExampleUnified() {
	x := textdiff.SplitLines(`this paragraph
is not
changed and
barely long
enough to
create a
new hunk

this paragraph
is going to be
removed
`)

	y := textdiff.SplitLines(`this is a new paragraph
that is inserted at the top

this paragraph
is not
changed and
barely long
enough to
create a
new hunk
`)
	fmt.Println(textdiff.Unified(x, y))
	// Output:
	// --- x
	// +++ y
	// @@ -1,3 +1,6 @@
	// +this is a new paragraph
	// +that is inserted at the top
	// +
	//  this paragraph
	//  is not
	//  changed and
	// @@ -5,7 +8,3 @@
	//  enough to
	//  create a
	//  new hunk
	// -
	// -this paragraph
	// -is going to be
	// -removed
}

func ExampleSplitLines() {
	fmt.Printf("%q\n", textdiff.SplitLines("first\r\nsecond\nthird"))
	// Output:
	// ["first" "second" "third"]
}

func ExampleLabels() {
	x := textdiff.SplitLines("old\n")
	y := textdiff.SplitLines("new\n")
	fmt.Println(textdiff.Unified(x, y, textdiff.Labels("a/config.yaml", "b/config.yaml")))
	// Output:
	// --- a/config.yaml
	// +++ b/config.yaml
	// @@ -1,1 +1,1 @@
	// -old
	// +new
}

func ExampleIndentHeuristic() {
	x := textdiff.SplitLines(`// ...
["foo", "bar", "baz"].map do |i|
  i.upcase
end
`)

	y := textdiff.SplitLines(`// ...
["foo", "bar", "baz"].map do |i|
  i
end

["foo", "bar", "baz"].map do |i|
  i.upcase
end
`)

	fmt.Println("With textdiff.IndentHeuristic:")
	fmt.Println(textdiff.Unified(x, y, textdiff.IndentHeuristic()))
	fmt.Println()
	fmt.Println("Without textdiff.IndentHeuristic:")
	fmt.Println(textdiff.Unified(x, y))
	// Output:
	// With textdiff.IndentHeuristic:
	// --- x
	// +++ y
	// @@ -1,4 +1,8 @@
	//  // ...
	// +["foo", "bar", "baz"].map do |i|
	// +  i
	// +end
	// +
	//  ["foo", "bar", "baz"].map do |i|
	//    i.upcase
	//  end
	//
	// Without textdiff.IndentHeuristic:
	// --- x
	// +++ y
	// @@ -1,4 +1,8 @@
	//  // ...
	//  ["foo", "bar", "baz"].map do |i|
	// +  i
	// +end
	// +
	// +["foo", "bar", "baz"].map do |i|
	//    i.upcase
	//  end
}
