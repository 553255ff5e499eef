// Package render draws calendar pages. It is the rendering collaborator the
// core delegates to: pages push their date windows and highlight state in
// through the Surface contract, and everything visual happens here.
package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/swipecal/swipecal/internal/calsys"
	"github.com/swipecal/swipecal/internal/holidays"
	"github.com/swipecal/swipecal/internal/style"
	"github.com/swipecal/swipecal/internal/textwidth"
	"github.com/swipecal/swipecal/internal/window"
)

const minColumnWidth = 4

var (
	restDayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	workdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
)

// SelectedFn is the read-back accessor for the externally tracked selected
// date, used when a surface re-applies its highlight.
type SelectedFn func() (time.Time, bool)

// PageView renders one page: a week strip or a month grid. It implements
// the ring's Surface contract.
type PageView struct {
	cfg       style.Config
	calc      window.Calculator
	selected  SelectedFn
	annotator calsys.Annotator
	holidays  holidays.Set

	win         window.Window
	highlight   time.Time
	highlighted bool
	width       int
}

// NewPageView constructs a page view. selected may be nil if highlights are
// only ever pushed explicitly.
func NewPageView(cfg style.Config, selected SelectedFn) *PageView {
	return &PageView{
		cfg:      cfg,
		calc:     window.NewCalculator(cfg.Calendar),
		selected: selected,
		width:    80,
	}
}

// SetAnnotator attaches a secondary-label source for day cells.
func (v *PageView) SetAnnotator(a calsys.Annotator) { v.annotator = a }

// SetHolidays attaches a holiday table for day labels.
func (v *PageView) SetHolidays(s holidays.Set) { v.holidays = s }

// SetWidth sets the rendered page width in columns.
func (v *PageView) SetWidth(w int) {
	if w < minColumnWidth*7 {
		w = minColumnWidth * 7
	}
	v.width = w
}

// Width returns the rendered page width.
func (v *PageView) Width() int { return v.width }

// SetWindow replaces the dates the page displays.
func (v *PageView) SetWindow(w window.Window) { v.win = w }

// Window returns the dates the page displays.
func (v *PageView) Window() window.Window { return v.win }

// SetSelected highlights d.
func (v *PageView) SetSelected(d time.Time) {
	v.highlight = v.cfg.Calendar.StartOfDay(d)
	v.highlighted = true
}

// Reapply re-reads the externally tracked selected date and highlights it.
func (v *PageView) Reapply() {
	if v.selected == nil {
		return
	}
	if d, ok := v.selected(); ok {
		v.SetSelected(d)
		return
	}
	v.Unhighlight()
}

// Unhighlight clears the selection highlight.
func (v *PageView) Unhighlight() { v.highlighted = false }

// ContainsToday reports whether the displayed window includes the current
// day.
func (v *PageView) ContainsToday() bool {
	return v.calc.ContainsToday(v.win)
}

func (v *PageView) columnWidth() int {
	cw := v.width / 7
	if cw < minColumnWidth {
		cw = minColumnWidth
	}
	return cw
}

// View renders the page at its configured width. Every line is padded to
// exactly that width so pages can be composed into a strip.
func (v *PageView) View() string {
	var lines []string
	lines = append(lines, v.titleLine(), v.headerLine())
	if v.win.Mode == window.ModeMonth {
		lines = append(lines, v.monthLines()...)
	} else {
		lines = append(lines, v.weekLines()...)
	}
	for i, line := range lines {
		lines[i] = textwidth.PadRight(line, v.width)
	}
	return strings.Join(lines, "\n")
}

func (v *PageView) titleLine() string {
	var title string
	if v.win.Mode == window.ModeMonth {
		title = v.win.Anchor.Format("January 2006")
	} else {
		first, last := v.win.Days[0], v.win.Days[6]
		if first.Month() == last.Month() {
			title = first.Format("Jan 2") + last.Format(" – 2, 2006")
		} else {
			title = first.Format("Jan 2") + last.Format(" – Jan 2, 2006")
		}
	}
	return v.cfg.TitleStyle().Render(textwidth.Center(title, v.width))
}

func (v *PageView) headerLine() string {
	symbols := v.cfg.Calendar.WeekdaySymbols()
	first := int(v.cfg.Calendar.FirstWeekday())
	cw := v.columnWidth()
	var sb strings.Builder
	for i := 0; i < 7; i++ {
		sb.WriteString(textwidth.Center(symbols[(first+i)%7], cw))
	}
	return v.cfg.HeaderStyle().Render(sb.String())
}

// labelsEnabled reports whether pages render a label row beneath each day
// row. It depends only on configuration, never on window contents, so row
// geometry stays identical across all three pages of a strip.
func (v *PageView) labelsEnabled() bool {
	return v.annotator != nil || v.holidays != nil
}

func (v *PageView) weekLines() []string {
	cw := v.columnWidth()
	var dayRow, labelRow strings.Builder
	for _, d := range v.win.Days {
		if d.IsZero() {
			dayRow.WriteString(strings.Repeat(" ", cw))
			labelRow.WriteString(strings.Repeat(" ", cw))
			continue
		}
		dayRow.WriteString(v.dayCell(d, cw))
		labelRow.WriteString(v.labelCell(d, v.dayLabel(d), cw))
	}
	lines := []string{dayRow.String()}
	if v.labelsEnabled() {
		lines = append(lines, labelRow.String())
	}
	return lines
}

func (v *PageView) monthLines() []string {
	var lines []string
	cw := v.columnWidth()
	month := v.win.Anchor.Month()
	cursor := v.calc.WeekStart(v.win.Anchor)
	end := v.cfg.Calendar.AddMonths(v.win.Anchor, 1)
	for weeks := 0; weeks < 6; weeks++ {
		var dayRow, labelRow strings.Builder
		for i := 0; i < 7; i++ {
			if cursor.Month() != month {
				dayRow.WriteString(strings.Repeat(" ", cw))
				labelRow.WriteString(strings.Repeat(" ", cw))
			} else {
				dayRow.WriteString(v.dayCell(cursor, cw))
				labelRow.WriteString(v.labelCell(cursor, v.dayLabel(cursor), cw))
			}
			cursor = v.cfg.Calendar.AddDays(cursor, 1)
		}
		lines = append(lines, dayRow.String())
		if v.labelsEnabled() {
			lines = append(lines, labelRow.String())
		}
		if !cursor.Before(end) {
			break
		}
	}
	return lines
}

func (v *PageView) dayCell(d time.Time, cw int) string {
	return v.cellStyle(d).Render(textwidth.Center(d.Format("2"), cw))
}

func (v *PageView) labelCell(d time.Time, label string, cw int) string {
	if textwidth.StringWidth(label) > cw {
		label = ""
	}
	return v.cellStyle(d).Render(textwidth.Center(label, cw))
}

// cellStyle picks the style for a day's number and label. Rest days are
// tinted blue and compensating workdays orange, taking priority over the
// category style; a selected cell keeps the delegate's selection style.
func (v *PageView) cellStyle(d time.Time) lipgloss.Style {
	st := v.stateOf(d)
	if st == style.StateNormal {
		if info, ok := v.holidays.ForDate(d); ok {
			if info.IsHoliday {
				return restDayStyle
			}
			return workdayStyle
		}
	}
	return v.cfg.DayStyle(v.cfg.Categorize(d), st)
}

func (v *PageView) stateOf(d time.Time) style.State {
	if v.highlighted && v.cfg.Calendar.SameDay(d, v.highlight) {
		return style.StateSelected
	}
	return style.StateNormal
}

func (v *PageView) dayLabel(d time.Time) string {
	if info, ok := v.holidays.ForDate(d); ok && info.Name != "" {
		return info.Name
	}
	if v.annotator != nil {
		return v.annotator.Label(d)
	}
	return ""
}

// HitTest maps page-local cell coordinates to the date drawn there.
func (v *PageView) HitTest(x, y int) (time.Time, bool) {
	col := x / v.columnWidth()
	if col < 0 || col > 6 {
		return time.Time{}, false
	}
	rowH := 1
	if v.labelsEnabled() {
		rowH = 2
	}
	gridY := y - 2 // title and header rows
	if gridY < 0 {
		return time.Time{}, false
	}
	if v.win.Mode == window.ModeWeek {
		if gridY >= rowH {
			return time.Time{}, false
		}
		d := v.win.Days[col]
		if d.IsZero() {
			return time.Time{}, false
		}
		return d, true
	}
	week := gridY / rowH
	d := v.cfg.Calendar.AddDays(v.calc.WeekStart(v.win.Anchor), week*7+col)
	if d.Month() != v.win.Anchor.Month() {
		return time.Time{}, false
	}
	return d, true
}
