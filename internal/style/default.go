package style

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/swipecal/swipecal/internal/calsys"
	"github.com/swipecal/swipecal/internal/window"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	futureStyle       = lipgloss.NewStyle()
	pastStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	pastDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569"))
	todayStyle        = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#34D399"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0F172A")).
			Background(lipgloss.Color("#FEC260"))
	selectedTodayStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#0F172A")).
				Background(lipgloss.Color("#34D399"))
)

// Default is a ready-to-use provider around a calendar system.
type Default struct {
	System       calsys.System
	Mode         window.Mode
	PastDisabled bool
	NoColor      bool
	OnSelect     func(date time.Time, sys calsys.System)
}

func (d Default) CalendarSystem() calsys.System { return d.System }

func (d Default) DisplayMode() window.Mode { return d.Mode }

func (d Default) PastDaysDisabled() bool { return d.PastDisabled }

func (d Default) DayStyle(c Category, s State) lipgloss.Style {
	if d.NoColor {
		if s == StateSelected {
			return lipgloss.NewStyle().Reverse(true)
		}
		return lipgloss.NewStyle()
	}
	if s == StateSelected {
		if c == CategoryToday {
			return selectedTodayStyle
		}
		return selectedStyle
	}
	switch c {
	case CategoryToday:
		return todayStyle
	case CategoryPastEnabled:
		return pastStyle
	case CategoryPastDisabled:
		return pastDisabledStyle
	default:
		return futureStyle
	}
}

func (d Default) HeaderStyle() lipgloss.Style {
	if d.NoColor {
		return lipgloss.NewStyle().Bold(true)
	}
	return headerStyle
}

func (d Default) TitleStyle() lipgloss.Style {
	if d.NoColor {
		return lipgloss.NewStyle().Bold(true)
	}
	return titleStyle
}

func (d Default) DaySelected(date time.Time, sys calsys.System) {
	if d.OnSelect != nil {
		d.OnSelect(date, sys)
	}
}
