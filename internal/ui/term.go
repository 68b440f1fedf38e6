package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const defaultWidth = 80

// TermWidth returns the current terminal width, or 80 when stdout is not a
// terminal or the size cannot be determined.
func TermWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Divider returns a horizontal rule sized to the terminal, capped at the
// default width so checks stay readable on very wide terminals.
func Divider() string {
	width := TermWidth()
	if width > defaultWidth {
		width = defaultWidth
	}
	return strings.Repeat("-", width)
}
