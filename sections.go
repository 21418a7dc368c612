package main

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// section is one self-contained demonstration. run writes its results to out;
// the recover section additionally writes the recovered message to errOut.
// snippet is the representative source echoed by --annotate.
type section struct {
	name    string
	title   string
	summary string
	snippet string
	run     func(out, errOut io.Writer)
}

// sections is the registry. Order here is execution order and must stay
// stable: full-run output is compared byte for byte by editor integrations.
var sections = []section{
	{
		name:    "accumulator",
		title:   "Accumulator",
		summary: "generic numeric accumulator with chained addition",
		snippet: `ints := NewAccumulator(0)
ints.Add(10).Add(20).Add(30)
fmt.Println(ints.Value()) // 60`,
		run: runAccumulator,
	},
	{
		name:    "point",
		title:   "Point",
		summary: "value type with component-wise addition and Stringer",
		snippet: `p := Point{X: 3, Y: 4}
q := Point{X: 1, Y: 2}
fmt.Println(p.Add(q)) // (4, 6)`,
		run: runPoint,
	},
	{
		name:    "status",
		title:   "Status",
		summary: "iota enumeration with a Stringer implementation",
		snippet: `type Status int

const (
	StatusSuccess Status = iota
	StatusError
	StatusPending
)`,
		run: runStatus,
	},
	{
		name:    "closures",
		title:   "Closures",
		summary: "sorting and filtering with closure comparators and predicates",
		snippet: `numbers := []int{5, 2, 8, 1, 9, 3}
slices.SortFunc(numbers, func(a, b int) int { return cmp.Compare(a, b) })
evens := filter(numbers, func(n int) bool { return n%2 == 0 })`,
		run: runClosures,
	},
	{
		name:    "ownership",
		title:   "Ownership",
		summary: "heap values behind pointers, shared references, deferred release",
		snippet: `acc := NewAccumulator(10.5)
defer release(acc)
alias := acc // second reference, same backing value
alias.Add(5.3)`,
		run: runOwnership,
	},
	{
		name:    "recover",
		title:   "Recover",
		summary: "out-of-range index trapped with defer and recover",
		snippet: `defer func() {
	if r := recover(); r != nil {
		fmt.Fprintln(os.Stderr, "recovered:", r)
	}
}()
_ = values[10] // three elements; panics`,
		run: runRecover,
	},
	{
		name:    "modern",
		title:   "Modern",
		summary: "inferred declarations, range loops, sorted map traversal",
		snippet: `scores := map[string]int{"Alice": 95, "Bob": 87, "Charlie": 92}
for _, name := range slices.Sorted(maps.Keys(scores)) {
	fmt.Printf("%s: %d\n", name, scores[name])
}`,
		run: runModern,
	},
}

func runAccumulator(out, _ io.Writer) {
	ints := NewAccumulator(0)
	ints.Add(10).Add(20).Add(30)
	fmt.Fprintf(out, "int accumulator: %d\n", ints.Value())

	floats := NewAccumulator(3.14)
	floats.Add(2.86)
	fmt.Fprintf(out, "float accumulator: %g\n", floats.Value())

	fmt.Fprintf(out, "scaled: %d\n", NewAccumulator(2).Add(3).Scale(4).Value())
	fmt.Fprintf(out, "multiply(6, 7) = %d\n", Multiply(6, 7))
}

func runPoint(out, _ io.Writer) {
	p := Point{X: 3, Y: 4}
	q := Point{X: 1, Y: 2}
	fmt.Fprintf(out, "%v + %v = %v\n", p, q, p.Add(q))
}

func runStatus(out, _ io.Writer) {
	for s := StatusSuccess; s <= StatusPending; s++ {
		fmt.Fprintf(out, "%d: %s\n", int(s), s)
	}
	fmt.Fprintf(out, "unknown value: %s\n", Status(7))
}

func runClosures(out, _ io.Writer) {
	numbers := []int{5, 2, 8, 1, 9, 3}
	slices.SortFunc(numbers, func(a, b int) int { return cmp.Compare(a, b) })
	fmt.Fprintf(out, "sorted: %v\n", numbers)

	evens := filter(numbers, func(n int) bool { return n%2 == 0 })
	fmt.Fprintf(out, "evens: %v\n", evens)

	square := func(x int) int { return x * x }
	fmt.Fprintf(out, "square(5) = %d\n", square(5))
}

// filter returns the elements of in for which keep reports true.
func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func runOwnership(out, _ io.Writer) {
	owned := NewAccumulator(10.5)
	defer func() {
		fmt.Fprintf(out, "released owned accumulator at %g\n", owned.Value())
	}()
	owned.Add(5.3)
	fmt.Fprintf(out, "owned accumulator: %g\n", owned.Value())

	shared := NewAccumulator(100)
	alias := shared
	alias.Add(50)
	fmt.Fprintf(out, "shared accumulator: %d (two references, one value)\n", shared.Value())
}

func runRecover(out, errOut io.Writer) {
	values := []int{1, 2, 3}
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(errOut, "recovered: %v\n", r)
			}
		}()
		fmt.Fprintf(out, "values[10] = %d\n", values[10])
	}()
	fmt.Fprintln(out, "execution continues")
}

func runModern(out, _ io.Writer) {
	answer := 42
	greeting := "Hello, Go!"
	cube := func(x int) int { return x * x * x }
	fmt.Fprintf(out, "answer: %d\n", answer)
	fmt.Fprintf(out, "greeting: %s\n", greeting)
	fmt.Fprintf(out, "cube(5) = %d\n", cube(5))

	languages := []string{"Go", "Python", "JavaScript", "Rust"}
	fmt.Fprintf(out, "languages: %s\n", strings.Join(languages, " "))

	scores := map[string]int{"Alice": 95, "Bob": 87, "Charlie": 92}
	fmt.Fprintln(out, "scores:")
	for _, name := range slices.Sorted(maps.Keys(scores)) {
		fmt.Fprintf(out, "  %s: %d\n", name, scores[name])
	}
}
