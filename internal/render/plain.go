package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/swipecal/swipecal/internal/calsys"
	"github.com/swipecal/swipecal/internal/holidays"
	"github.com/swipecal/swipecal/internal/style"
	"github.com/swipecal/swipecal/internal/window"
)

// PlainOptions controls the non-interactive renderer.
type PlainOptions struct {
	Writer    io.Writer
	Config    style.Config
	Anchor    time.Time
	Width     int
	Annotator calsys.Annotator
	Holidays  holidays.Set
}

// ErrNoCalendar indicates RunPlain was invoked with an empty Config.
var ErrNoCalendar = errors.New("render: plain options carry no calendar system")

// RunPlain renders the page containing Anchor exactly once, highlighting
// the anchor date.
func RunPlain(opts PlainOptions) error {
	if opts.Config.Calendar == nil {
		return ErrNoCalendar
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	width := opts.Width
	if width == 0 {
		width = DetectWidth()
	}

	calc := window.NewCalculator(opts.Config.Calendar)
	anchor := opts.Config.Calendar.StartOfDay(opts.Anchor)
	view := NewPageView(opts.Config, nil)
	view.SetWidth(width)
	view.SetAnnotator(opts.Annotator)
	view.SetHolidays(opts.Holidays)
	view.SetWindow(calc.FromAnchor(opts.Config.Mode, anchor))
	view.SetSelected(anchor)

	_, err := fmt.Fprintln(opts.Writer, view.View())
	return err
}

// DetectWidth tries to determine the terminal width, falling back to 80
// columns.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return 80
}
