package calsys

import (
	"fmt"
	"time"
)

// Years the Gregorian implementation is willing to represent. Arithmetic
// that would leave this range is a precondition violation, not a runtime
// error.
const (
	MinYear = 1
	MaxYear = 9999
)

// System is the calendar capability the widget is configured with. It owns
// first-day-of-week policy, weekday naming and all date arithmetic; the
// widget never carries years or months by hand.
type System interface {
	// FirstWeekday returns the weekday shown in column 0.
	FirstWeekday() time.Weekday
	// WeekdaySymbols returns the seven day names in native order,
	// index 0 being Sunday.
	WeekdaySymbols() [7]string
	// Now returns the current instant.
	Now() time.Time
	// Today returns the current date normalized to midnight.
	Today() time.Time
	// StartOfDay truncates t to midnight in the calendar's location.
	StartOfDay(t time.Time) time.Time
	// AddDays, AddWeeks and AddMonths shift t by whole periods,
	// normalizing across month and year boundaries.
	AddDays(t time.Time, n int) time.Time
	AddWeeks(t time.Time, n int) time.Time
	AddMonths(t time.Time, n int) time.Time
	// MonthStart normalizes t to the first day of its month.
	MonthStart(t time.Time) time.Time
	// SameDay reports whether a and b fall on the same calendar day.
	SameDay(a, b time.Time) bool
	// IsToday reports whether t falls on the current day.
	IsToday(t time.Time) bool
}

var defaultSymbols = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Gregorian implements System over the standard library's proleptic
// Gregorian calendar.
type Gregorian struct {
	now          func() time.Time
	firstWeekday time.Weekday
	loc          *time.Location
	symbols      [7]string
}

// Option configures a Gregorian system.
type Option func(*Gregorian)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(g *Gregorian) {
		g.now = now
	}
}

// WithFirstWeekday sets the weekday shown in column 0.
func WithFirstWeekday(d time.Weekday) Option {
	return func(g *Gregorian) {
		g.firstWeekday = d
	}
}

// WithLocation sets the location used for day boundaries.
func WithLocation(loc *time.Location) Option {
	return func(g *Gregorian) {
		g.loc = loc
	}
}

// WithWeekdaySymbols replaces the day names (native order, Sunday first).
func WithWeekdaySymbols(symbols [7]string) Option {
	return func(g *Gregorian) {
		g.symbols = symbols
	}
}

// NewGregorian constructs a Gregorian system. Defaults: real clock, Sunday
// first, local time zone, English two-letter day names.
func NewGregorian(opts ...Option) *Gregorian {
	g := &Gregorian{
		now:          time.Now,
		firstWeekday: time.Sunday,
		loc:          time.Local,
		symbols:      defaultSymbols,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gregorian) FirstWeekday() time.Weekday { return g.firstWeekday }

func (g *Gregorian) WeekdaySymbols() [7]string { return g.symbols }

func (g *Gregorian) Now() time.Time { return g.now() }

func (g *Gregorian) Today() time.Time { return g.StartOfDay(g.now()) }

func (g *Gregorian) StartOfDay(t time.Time) time.Time {
	t = t.In(g.loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, g.loc)
}

func (g *Gregorian) AddDays(t time.Time, n int) time.Time {
	return g.check(t.AddDate(0, 0, n))
}

func (g *Gregorian) AddWeeks(t time.Time, n int) time.Time {
	return g.check(t.AddDate(0, 0, n*7))
}

func (g *Gregorian) AddMonths(t time.Time, n int) time.Time {
	return g.check(t.AddDate(0, n, 0))
}

func (g *Gregorian) MonthStart(t time.Time) time.Time {
	t = t.In(g.loc)
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, g.loc)
}

func (g *Gregorian) SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.In(g.loc).Date()
	y2, m2, d2 := b.In(g.loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (g *Gregorian) IsToday(t time.Time) bool {
	return g.SameDay(t, g.now())
}

// check guards against arithmetic escaping the representable range.
func (g *Gregorian) check(t time.Time) time.Time {
	if y := t.Year(); y < MinYear || y > MaxYear {
		panic(fmt.Sprintf("calsys: date arithmetic produced unrepresentable year %d", y))
	}
	return t
}
