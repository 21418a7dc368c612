// # go-syntaxdemo
//
// `go-syntaxdemo` is a syntax-highlighting fixture: a small CLI whose source
// and console output exercise a fixed, known set of Go language constructs so
// an editor's highlighter can be validated against them. Each construct lives
// in a self-contained demonstration section; a full run executes every
// section in a stable order and produces byte-identical output across runs.
//
// Sections:
//
//   - `accumulator`: a generic numeric accumulator with chained addition,
//     scaling, and a free multiply function.
//   - `point`: a 2D coordinate value type with component-wise addition and a
//     `Stringer` implementation.
//   - `status`: an iota enumeration with a `Stringer` mapping values to
//     names, including an out-of-range value.
//   - `closures`: sorting with a closure comparator, filtering with a closure
//     predicate, and a closure bound to a variable.
//   - `ownership`: heap values behind pointers, a second reference sharing
//     one backing value, and a deferred scope-exit release.
//   - `recover`: a deliberate out-of-range slice index trapped with
//     `defer`/`recover`; the recovered message goes to stderr and the process
//     still exits 0.
//   - `modern`: inferred declarations, range loops, and a map literal
//     traversed in sorted key order.
//
// ## Usage
//
//	go run . [flags] [section ...]
//
// Examples:
//
//   - Run every section:
//
//     go run .
//
//   - Run one section with its source snippet echoed and highlighted:
//
//     go run . --annotate closures
//
//   - List sections:
//
//     go run . --list
//
//   - Capture a full run for golden-file comparison:
//
//     go run . --color=never -o fixture.txt
//
// ## Supported Flags
//
//   - `-l, --list`: print section names with summaries and exit.
//   - `-a, --annotate`: echo each section's representative source snippet
//     with token-class highlighting before running it.
//   - `--color MODE`: `auto` (detect terminal), `always` (pin ANSI256), or
//     `never` (plain text). Forced modes keep output deterministic.
//   - `-o FILE`: write output to `FILE` instead of stdout (`-` means stdout).
//
// ## Inventory
//
// `go-syntaxdemo inventory [package]` loads a package and counts the
// constructs the fixture demonstrates (generic declarations, function
// literals, defer statements, range loops, type switches, literal forms).
// With no argument it inspects its own source; standard library packages
// resolve by path suffix like `go doc` arguments:
//
//	go run . inventory strings
//
// This is the fixture's self-check: an integration can assert that the
// source really contains every construct it claims to exercise.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	go run . completion bash        # bash
//	go run . completion zsh         # zsh
//	go run . completion fish | source
//	go run . completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `go-syntaxdemo` can generate Markdown for each CLI command via `gen-docs`:
//
//	go run . gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
