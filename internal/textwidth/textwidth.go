// Package textwidth measures and pads strings by monospace column width,
// counting East Asian wide runes as two columns so CJK day labels line up
// with ASCII day numbers.
package textwidth

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/width"
)

// RuneWidth returns the column width of a single rune.
func RuneWidth(r rune) int {
	if r == '\n' || r == '\r' {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// StringWidth returns the maximum visual width of s across its lines,
// ignoring ANSI escape sequences.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	maxWidth := 0
	for _, line := range strings.Split(ansi.Strip(s), "\n") {
		w := 0
		for _, r := range line {
			w += RuneWidth(r)
		}
		if w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// PadRight appends spaces until the rendered width reaches target.
func PadRight(s string, target int) string {
	diff := target - StringWidth(s)
	if diff <= 0 {
		return s
	}
	return s + strings.Repeat(" ", diff)
}

// PadLeft prepends spaces until the rendered width reaches target.
func PadLeft(s string, target int) string {
	diff := target - StringWidth(s)
	if diff <= 0 {
		return s
	}
	return strings.Repeat(" ", diff) + s
}

// Center pads s on both sides to the target width, favoring the right side
// when the remainder is odd.
func Center(s string, target int) string {
	diff := target - StringWidth(s)
	if diff <= 0 {
		return s
	}
	left := diff / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", diff-left)
}
