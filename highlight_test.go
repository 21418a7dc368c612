package main

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func hasANSI(s string) bool {
	return ansiRegex.MatchString(s)
}

func TestHighlightSourcePreservesText(t *testing.T) {
	// Force ANSI color output (lipgloss disables colors when no TTY).
	lipgloss.SetColorProfile(termenv.ANSI256)
	tests := []string{
		"x := 42 // answer\n",
		`greeting := "Hello, Go!"`,
		"func add(a, b int) int {\n\treturn a + b\n}\n",
		`for _, name := range slices.Sorted(maps.Keys(scores)) {
	fmt.Printf("%s: %d\n", name, scores[name])
}`,
	}
	for _, src := range tests {
		got := highlightSource(src)
		if !hasANSI(got) {
			t.Fatalf("expected ANSI codes in %q", got)
		}
		if plain := stripANSI(got); plain != src {
			t.Fatalf("highlighting altered text:\ngot  %q\nwant %q", plain, src)
		}
	}
}

func TestHighlightSourcePlainProfile(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	src := "func add(a, b int) int { return a + b }"
	if got := highlightSource(src); got != src {
		t.Fatalf("expected unstyled passthrough, got %q", got)
	}
}

func TestHighlightSourceEmpty(t *testing.T) {
	if got := highlightSource(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestHighlightSourcePartialInput(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	// Unterminated string; valid portions still render, text is preserved.
	src := `s := "unterminated`
	if got := highlightSource(src); got != src {
		t.Fatalf("expected %q, got %q", src, got)
	}
}
