package calsys

import (
	"time"

	calendarlib "github.com/Lofanmi/chinese-calendar-golang/calendar"
)

// Supported Gregorian year range enforced by the upstream lunar library.
const (
	minLunarYear = 1900
	maxLunarYear = 3000
)

// Annotator produces an optional secondary label for a day cell, rendered
// beneath the Gregorian day number.
type Annotator interface {
	Label(t time.Time) string
}

// LunarAnnotator labels days with Chinese lunar calendar metadata. Solar
// terms take precedence, followed by the lunar month name on the first day
// of a lunar month, then the lunar day alias.
type LunarAnnotator struct{}

func (LunarAnnotator) Label(t time.Time) string {
	if t.Year() < minLunarYear || t.Year() > maxLunarYear {
		return ""
	}
	cal := calendarlib.BySolar(
		int64(t.Year()),
		int64(t.Month()),
		int64(t.Day()),
		12, 0, 0,
	)
	if solarterm := cal.Solar.CurrentSolarterm; solarterm != nil {
		if solarterm.IsInDay(&t) {
			return solarterm.Alias()
		}
	}
	if cal.Lunar.DayAlias() == "初一" {
		if alias := cal.Lunar.MonthAlias(); alias != "" {
			return alias
		}
	}
	return cal.Lunar.DayAlias()
}
