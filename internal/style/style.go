// Package style defines the pull-based configuration contract between the
// widget and its embedding application. The widget queries a Provider once
// per SetDelegate and freezes the answers into an immutable Config, so a
// half-configured provider fails fast instead of surfacing as a missing
// style at paint time.
package style

import (
	"errors"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/swipecal/swipecal/internal/calsys"
	"github.com/swipecal/swipecal/internal/window"
)

// Category classifies a day relative to today.
type Category int

const (
	CategoryPastEnabled Category = iota
	CategoryPastDisabled
	CategoryToday
	CategoryFuture
)

// State is the selection state of a day cell.
type State int

const (
	StateNormal State = iota
	StateSelected
)

// Provider supplies everything the widget pulls at configuration time.
type Provider interface {
	// CalendarSystem returns the calendar capability to compute with.
	CalendarSystem() calsys.System
	// DisplayMode returns the initial display mode.
	DisplayMode() window.Mode
	// PastDaysDisabled reports whether days before today are inert.
	PastDaysDisabled() bool
	// DayStyle returns the style for a day cell.
	DayStyle(c Category, s State) lipgloss.Style
	// HeaderStyle returns the style for the weekday header row.
	HeaderStyle() lipgloss.Style
	// TitleStyle returns the style for the page title.
	TitleStyle() lipgloss.Style
	// DaySelected is invoked whenever the selected date changes.
	DaySelected(date time.Time, sys calsys.System)
}

// Errors returned by NewConfig for incomplete providers.
var (
	ErrNoProvider = errors.New("style: nil provider")
	ErrNoCalendar = errors.New("style: provider supplies no calendar system")
)

// Config is the immutable snapshot of a Provider. All fields are required;
// construction fails rather than leaving a field to be unwrapped later.
type Config struct {
	Calendar      calsys.System
	Mode          window.Mode
	PastDisabled  bool
	OnDaySelected func(date time.Time, sys calsys.System)

	dayStyles [4][2]lipgloss.Style
	header    lipgloss.Style
	title     lipgloss.Style
}

// NewConfig snapshots the provider.
func NewConfig(p Provider) (Config, error) {
	if p == nil {
		return Config{}, ErrNoProvider
	}
	sys := p.CalendarSystem()
	if sys == nil {
		return Config{}, ErrNoCalendar
	}
	cfg := Config{
		Calendar:      sys,
		Mode:          p.DisplayMode(),
		PastDisabled:  p.PastDaysDisabled(),
		OnDaySelected: p.DaySelected,
		header:        p.HeaderStyle(),
		title:         p.TitleStyle(),
	}
	for c := CategoryPastEnabled; c <= CategoryFuture; c++ {
		for s := StateNormal; s <= StateSelected; s++ {
			cfg.dayStyles[c][s] = p.DayStyle(c, s)
		}
	}
	return cfg, nil
}

// DayStyle returns the frozen style for a day cell.
func (c Config) DayStyle(cat Category, st State) lipgloss.Style {
	return c.dayStyles[cat][st]
}

// HeaderStyle returns the frozen weekday header style.
func (c Config) HeaderStyle() lipgloss.Style { return c.header }

// TitleStyle returns the frozen page title style.
func (c Config) TitleStyle() lipgloss.Style { return c.title }

// Categorize classifies d against the calendar system's current day.
func (c Config) Categorize(d time.Time) Category {
	today := c.Calendar.Today()
	switch {
	case c.Calendar.SameDay(d, today):
		return CategoryToday
	case d.Before(today):
		if c.PastDisabled {
			return CategoryPastDisabled
		}
		return CategoryPastEnabled
	default:
		return CategoryFuture
	}
}
