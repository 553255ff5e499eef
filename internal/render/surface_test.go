package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/swipecal/swipecal/internal/calsys"
	"github.com/swipecal/swipecal/internal/holidays"
	"github.com/swipecal/swipecal/internal/style"
	"github.com/swipecal/swipecal/internal/textwidth"
	"github.com/swipecal/swipecal/internal/window"
)

type fixedAnnotator struct{ label string }

func (a fixedAnnotator) Label(time.Time) string { return a.label }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func testConfig(t *testing.T, now time.Time) (style.Config, window.Calculator) {
	t.Helper()
	sys := calsys.NewGregorian(
		calsys.WithNow(func() time.Time { return now }),
		calsys.WithFirstWeekday(time.Sunday),
	)
	cfg, err := style.NewConfig(style.Default{System: sys, NoColor: true})
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	return cfg, window.NewCalculator(sys)
}

func TestViewPadsEveryLineToWidth(t *testing.T) {
	now := date(2024, time.March, 13)
	cfg, calc := testConfig(t, now)

	for _, win := range []window.Window{
		calc.Week(now),
		calc.MonthAnchor(now),
	} {
		v := NewPageView(cfg, nil)
		v.SetWidth(70)
		v.SetWindow(win)
		for i, line := range strings.Split(v.View(), "\n") {
			if w := textwidth.StringWidth(line); w != 70 {
				t.Fatalf("%v line %d width = %d, want 70", win.Mode, i, w)
			}
		}
	}
}

func TestLabelRowGeometryDependsOnConfigurationOnly(t *testing.T) {
	now := date(2024, time.March, 13)
	cfg, calc := testConfig(t, now)

	plain := NewPageView(cfg, nil)
	plain.SetWindow(calc.Week(now))
	if got := len(strings.Split(plain.View(), "\n")); got != 3 {
		t.Fatalf("week view without labels has %d lines, want 3", got)
	}

	// With an annotator the label row appears on every page, even when
	// every label is empty, so strip pages stay row-aligned.
	labeled := NewPageView(cfg, nil)
	labeled.SetAnnotator(fixedAnnotator{})
	labeled.SetWindow(calc.Week(now))
	if got := len(strings.Split(labeled.View(), "\n")); got != 4 {
		t.Fatalf("week view with labels has %d lines, want 4", got)
	}
}

func TestHitTestWeek(t *testing.T) {
	now := date(2024, time.March, 13)
	cfg, calc := testConfig(t, now)
	v := NewPageView(cfg, nil)
	v.SetWidth(70)
	v.SetWindow(calc.Week(now))

	d, ok := v.HitTest(55, 2)
	if !ok || !d.Equal(date(2024, time.March, 15)) {
		t.Fatalf("HitTest(55, 2) = %v, %v; want 2024-03-15", d, ok)
	}
	if _, ok := v.HitTest(5, 1); ok {
		t.Fatalf("header row should not hit a day")
	}
	if _, ok := v.HitTest(5, 3); ok {
		t.Fatalf("below the day row should not hit a day")
	}
}

func TestHitTestMonth(t *testing.T) {
	now := date(2024, time.March, 13)
	cfg, calc := testConfig(t, now)
	v := NewPageView(cfg, nil)
	v.SetWidth(70)
	v.SetWindow(calc.MonthAnchor(now))

	// March 2024 opens on a Friday; the first grid row starts Feb 25.
	d, ok := v.HitTest(55, 2)
	if !ok || !d.Equal(date(2024, time.March, 1)) {
		t.Fatalf("HitTest(55, 2) = %v, %v; want 2024-03-01", d, ok)
	}
	if _, ok := v.HitTest(5, 2); ok {
		t.Fatalf("out-of-month leading cell should not hit a day")
	}
	d, ok = v.HitTest(5, 3)
	if !ok || !d.Equal(date(2024, time.March, 3)) {
		t.Fatalf("HitTest(5, 3) = %v, %v; want 2024-03-03", d, ok)
	}
}

func TestReapplyReadsSelectionBack(t *testing.T) {
	now := date(2024, time.March, 13)
	cfg, calc := testConfig(t, now)
	selected := date(2024, time.March, 15)
	v := NewPageView(cfg, func() (time.Time, bool) { return selected, true })
	v.SetWindow(calc.Week(now))

	v.Unhighlight()
	v.Reapply()
	if !v.highlighted || !v.highlight.Equal(selected) {
		t.Fatalf("Reapply should restore the highlight to %v", selected)
	}
}

func TestCellStyleTintsHolidays(t *testing.T) {
	now := date(2024, time.March, 13)
	cfg, calc := testConfig(t, now)
	v := NewPageView(cfg, nil)
	v.SetWindow(calc.Week(date(2024, time.May, 1)))
	v.SetHolidays(holidays.Set{
		"2024-05-01": {Name: "劳动节", IsHoliday: true},
		"2024-05-02": {Name: "调休", IsHoliday: false},
	})

	rest := v.cellStyle(date(2024, time.May, 1))
	if got := rest.GetForeground(); got != lipgloss.Color("#3B82F6") {
		t.Fatalf("rest day foreground = %v, want blue tint", got)
	}
	work := v.cellStyle(date(2024, time.May, 2))
	if got := work.GetForeground(); got != lipgloss.Color("#F97316") {
		t.Fatalf("compensating workday foreground = %v, want orange tint", got)
	}

	// A selected holiday keeps the delegate's selection style.
	v.SetSelected(date(2024, time.May, 1))
	selected := v.cellStyle(date(2024, time.May, 1))
	if !selected.GetReverse() {
		t.Fatalf("selected holiday should use the selection style, not the tint")
	}
}

func TestContainsTodayTracksWindow(t *testing.T) {
	now := date(2024, time.March, 13)
	cfg, calc := testConfig(t, now)
	v := NewPageView(cfg, nil)

	v.SetWindow(calc.Week(now))
	if !v.ContainsToday() {
		t.Fatalf("window around today should contain today")
	}
	v.SetWindow(calc.Week(date(2024, time.June, 5)))
	if v.ContainsToday() {
		t.Fatalf("distant window should not contain today")
	}
}
