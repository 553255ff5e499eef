// Package window computes the date ranges calendar pages display: a
// seven-day sequence for week mode, a first-of-month anchor for month mode.
// All functions are pure; shifting across month and year boundaries is
// delegated to the calendar system's normalizing arithmetic.
package window

import (
	"time"

	"github.com/swipecal/swipecal/internal/calsys"
)

// Mode selects how a page maps dates to a window.
type Mode int

const (
	ModeWeek Mode = iota
	ModeMonth
)

func (m Mode) String() string {
	switch m {
	case ModeWeek:
		return "week"
	case ModeMonth:
		return "month"
	default:
		return "unknown"
	}
}

// Window is the set of dates one page displays. In week mode Days holds
// seven consecutive dates with index 0 on the configured first weekday. In
// month mode only Anchor is meaningful: the first day of the displayed
// month; the day-grid expansion belongs to the rendering collaborator.
type Window struct {
	Mode   Mode
	Anchor time.Time
	Days   [7]time.Time
}

// Calculator derives windows from anchor dates.
type Calculator struct {
	sys calsys.System
}

// NewCalculator returns a Calculator over the given calendar system.
func NewCalculator(sys calsys.System) Calculator {
	return Calculator{sys: sys}
}

// System returns the calendar system the calculator computes with.
func (c Calculator) System() calsys.System { return c.sys }

// WeekStart normalizes d to the configured first weekday within its week.
func (c Calculator) WeekStart(d time.Time) time.Time {
	d = c.sys.StartOfDay(d)
	diff := (int(d.Weekday()) - int(c.sys.FirstWeekday()) + 7) % 7
	return c.sys.AddDays(d, -diff)
}

// Week builds the week window containing d.
func (c Calculator) Week(d time.Time) Window {
	start := c.WeekStart(d)
	w := Window{Mode: ModeWeek, Anchor: start}
	for i := range w.Days {
		w.Days[i] = c.sys.AddDays(start, i)
	}
	return w
}

// MonthAnchor builds the month window containing d.
func (c Calculator) MonthAnchor(d time.Time) Window {
	return Window{Mode: ModeMonth, Anchor: c.sys.MonthStart(d)}
}

// FromAnchor builds the window of the given mode containing d.
func (c Calculator) FromAnchor(mode Mode, d time.Time) Window {
	if mode == ModeMonth {
		return c.MonthAnchor(d)
	}
	return c.Week(d)
}

// Next returns the window exactly one period after w.
func (c Calculator) Next(w Window) Window {
	return c.shift(w, 1)
}

// Previous returns the window exactly one period before w.
func (c Calculator) Previous(w Window) Window {
	return c.shift(w, -1)
}

func (c Calculator) shift(w Window, by int) Window {
	if w.Mode == ModeMonth {
		return Window{Mode: ModeMonth, Anchor: c.sys.AddMonths(w.Anchor, by)}
	}
	return c.Week(c.sys.AddWeeks(w.Anchor, by))
}

// Contains reports whether d falls inside w.
func (c Calculator) Contains(w Window, d time.Time) bool {
	if w.Mode == ModeMonth {
		return c.sys.MonthStart(d).Equal(w.Anchor)
	}
	for _, day := range w.Days {
		if !day.IsZero() && c.sys.SameDay(day, d) {
			return true
		}
	}
	return false
}

// ContainsToday reports whether the current day falls inside w.
func (c Calculator) ContainsToday(w Window) bool {
	return c.Contains(w, c.sys.Today())
}

// Equal reports whether two windows display the same dates.
func (c Calculator) Equal(a, b Window) bool {
	return a.Mode == b.Mode && a.Anchor.Equal(b.Anchor)
}
