package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/swipecal/swipecal/internal/textwidth"
)

// Strip composes the three page views side by side and cuts out the
// viewport at the current drag offset. Offset 0 centers the current page; a
// positive offset (dragged right) reveals the previous page, a negative one
// the next. The cut is ANSI-aware so styles survive slicing mid-line.
func Strip(previous, current, next string, pageWidth, offset int) string {
	if offset > pageWidth {
		offset = pageWidth
	}
	if offset < -pageWidth {
		offset = -pageWidth
	}
	prevLines := strings.Split(previous, "\n")
	curLines := strings.Split(current, "\n")
	nextLines := strings.Split(next, "\n")
	height := max(len(prevLines), max(len(curLines), len(nextLines)))

	blank := strings.Repeat(" ", pageWidth)
	row := func(lines []string, i int) string {
		if i >= len(lines) {
			return blank
		}
		return textwidth.PadRight(lines[i], pageWidth)
	}

	start := pageWidth - offset
	out := make([]string, height)
	for i := 0; i < height; i++ {
		joined := row(prevLines, i) + row(curLines, i) + row(nextLines, i)
		out[i] = ansi.Cut(joined, start, start+pageWidth)
	}
	return strings.Join(out, "\n")
}
