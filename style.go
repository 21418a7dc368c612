package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Token and banner styles. Colors are Catppuccin latte/mocha pairs so the
// fixture reads well on both light and dark terminals.
var (
	// bannerStyle frames the "=== Section ===" lines.
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}).
			Bold(true)

	// nameStyle renders section names in --list output.
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"}).
			Bold(true)

	// keywordStyle for language keywords: func, defer, range, return, ...
	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}).
			Bold(true)

	// operatorStyle for operators and punctuation: :=, +, {, }, ...
	operatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"})

	// identStyle for identifiers
	identStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"})

	// stringStyle for string and rune literals
	stringStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"})

	// literalStyle for numeric literals
	literalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"})

	// commentStyle for comments
	commentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"}).
			Italic(true)

	// defaultStyle for anything unclassified
	defaultStyle = lipgloss.NewStyle()
)

// applyColorMode resolves the --color flag. Forced modes pin the lipgloss
// profile so output stays deterministic regardless of the terminal.
func applyColorMode(mode string) error {
	switch mode {
	case "auto":
		lipgloss.SetColorProfile(termenv.ColorProfile())
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("invalid --color mode %q (want auto, always, or never)", mode)
	}
	return nil
}
