package calsys

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestTodayUsesInjectedClock(t *testing.T) {
	now := time.Date(2024, time.March, 13, 15, 42, 7, 0, time.Local)
	g := NewGregorian(WithNow(func() time.Time { return now }))

	if got := g.Today(); !got.Equal(date(2024, time.March, 13)) {
		t.Fatalf("Today() = %v, want 2024-03-13 midnight", got)
	}
	if !g.IsToday(date(2024, time.March, 13)) {
		t.Fatalf("IsToday should match the injected clock's date")
	}
}

func TestStartOfDayTruncatesToMidnight(t *testing.T) {
	g := NewGregorian()
	in := time.Date(2024, time.March, 13, 23, 59, 59, 999, time.Local)
	if got := g.StartOfDay(in); !got.Equal(date(2024, time.March, 13)) {
		t.Fatalf("StartOfDay = %v, want 2024-03-13 midnight", got)
	}
}

func TestAddMonthsNormalizesOverflow(t *testing.T) {
	g := NewGregorian()
	// Jan 31 + 1 month lands past the end of February and normalizes.
	if got := g.AddMonths(date(2024, time.January, 31), 1); !got.Equal(date(2024, time.March, 2)) {
		t.Fatalf("AddMonths(Jan 31, 1) = %v, want 2024-03-02", got)
	}
	if got := g.AddMonths(date(2023, time.December, 15), 1); !got.Equal(date(2024, time.January, 15)) {
		t.Fatalf("AddMonths across year boundary = %v, want 2024-01-15", got)
	}
}

func TestAddWeeksAndDays(t *testing.T) {
	g := NewGregorian()
	if got := g.AddWeeks(date(2024, time.February, 26), 1); !got.Equal(date(2024, time.March, 4)) {
		t.Fatalf("AddWeeks = %v, want 2024-03-04", got)
	}
	if got := g.AddDays(date(2024, time.February, 28), 1); !got.Equal(date(2024, time.February, 29)) {
		t.Fatalf("AddDays should land on the leap day, got %v", got)
	}
}

func TestMonthStart(t *testing.T) {
	g := NewGregorian()
	if got := g.MonthStart(date(2024, time.March, 13)); !got.Equal(date(2024, time.March, 1)) {
		t.Fatalf("MonthStart = %v, want 2024-03-01", got)
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	g := NewGregorian()
	a := time.Date(2024, time.March, 13, 0, 1, 0, 0, time.Local)
	b := time.Date(2024, time.March, 13, 23, 58, 0, 0, time.Local)
	if !g.SameDay(a, b) {
		t.Fatalf("SameDay should ignore the time of day")
	}
	if g.SameDay(a, date(2024, time.March, 14)) {
		t.Fatalf("SameDay should distinguish adjacent days")
	}
}

func TestArithmeticOutOfRangePanics(t *testing.T) {
	g := NewGregorian()
	defer func() {
		if recover() == nil {
			t.Fatalf("arithmetic past MaxYear should panic")
		}
	}()
	g.AddMonths(date(9999, time.December, 1), 1)
}

func TestWeekdaySymbolOverride(t *testing.T) {
	symbols := [7]string{"日", "一", "二", "三", "四", "五", "六"}
	g := NewGregorian(WithWeekdaySymbols(symbols), WithFirstWeekday(time.Monday))
	if g.WeekdaySymbols() != symbols {
		t.Fatalf("WeekdaySymbols() = %v, want the override", g.WeekdaySymbols())
	}
	if g.FirstWeekday() != time.Monday {
		t.Fatalf("FirstWeekday() = %v, want Monday", g.FirstWeekday())
	}
}

func TestLunarAnnotatorRange(t *testing.T) {
	var a LunarAnnotator
	if got := a.Label(date(1850, time.June, 1)); got != "" {
		t.Fatalf("Label before the supported range = %q, want empty", got)
	}
	if got := a.Label(date(3500, time.June, 1)); got != "" {
		t.Fatalf("Label after the supported range = %q, want empty", got)
	}
	if got := a.Label(date(2024, time.March, 13)); got == "" {
		t.Fatalf("every in-range day should carry a lunar label")
	}
}
