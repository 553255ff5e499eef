// Package widget implements the swipeable calendar controller as an
// embeddable Bubble Tea component. It owns one three-slot page ring per
// active display mode, the selection state, and the drag/commit/snap
// transition machinery; styling and day-cell rendering are delegated to the
// configured style provider and the render package.
package widget

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swipecal/swipecal/internal/calsys"
	"github.com/swipecal/swipecal/internal/holidays"
	"github.com/swipecal/swipecal/internal/render"
	"github.com/swipecal/swipecal/internal/ring"
	"github.com/swipecal/swipecal/internal/selection"
	"github.com/swipecal/swipecal/internal/style"
	"github.com/swipecal/swipecal/internal/window"
)

// commitThreshold is how far past the midline, in columns, the current page
// must have moved on release for the drag to commit a transition instead of
// snapping back.
const commitThreshold = 25.0

// callbackRef lets the selection state's change notification survive
// delegate reconfiguration without rebuilding the selection.
type callbackRef struct {
	fn func(date time.Time, sys calsys.System)
}

// Widget is the calendar controller. The zero value is not usable; call New
// and then SetDelegate. Until a delegate is set every operation is a
// guarded no-op.
type Widget struct {
	cfg   style.Config
	ready bool
	mode  window.Mode
	calc  window.Calculator

	rng      *ring.Ring
	sel      *selection.State
	views    [3]*render.PageView
	notify   *callbackRef
	annotate calsys.Annotator
	holidays holidays.Set

	phase   phase
	offset  float64
	width   int
	dragX   int
	pressX  int
	dragged bool

	anim    *slideAnim
	animSeq int
	jumpDir int

	keys KeyMap
}

// New returns an unconfigured widget.
func New() Widget {
	return Widget{
		phase:  phaseUnconfigured,
		width:  80,
		keys:   DefaultKeyMap(),
		notify: &callbackRef{},
	}
}

// Ready reports whether a delegate has been configured.
func (w Widget) Ready() bool { return w.ready }

// Mode returns the active display mode.
func (w Widget) Mode() window.Mode { return w.mode }

// Selected returns the selected date, zero before configuration.
func (w Widget) Selected() time.Time {
	if w.sel == nil {
		return time.Time{}
	}
	return w.sel.Selected()
}

// Keys returns the widget's key bindings, e.g. for a help line.
func (w Widget) Keys() KeyMap { return w.keys }

// SetKeyMap replaces the key bindings.
func (w Widget) SetKeyMap(k KeyMap) Widget {
	w.keys = k
	return w
}

// SetAnnotator attaches a secondary day-label source to all pages.
func (w Widget) SetAnnotator(a calsys.Annotator) Widget {
	w.annotate = a
	for _, v := range w.views {
		if v != nil {
			v.SetAnnotator(a)
		}
	}
	return w
}

// SetHolidays attaches a holiday table to all pages.
func (w Widget) SetHolidays(s holidays.Set) Widget {
	w.holidays = s
	for _, v := range w.views {
		if v != nil {
			v.SetHolidays(s)
		}
	}
	return w
}

// SetDelegate pulls mode, calendar system and all styling from the provider
// and freezes them. The selection survives reconfiguration; the ring is
// rebuilt around it.
func (w Widget) SetDelegate(p style.Provider) (Widget, error) {
	cfg, err := style.NewConfig(p)
	if err != nil {
		return w, err
	}
	w.cfg = cfg
	w.calc = window.NewCalculator(cfg.Calendar)
	w.notify.fn = cfg.OnDaySelected
	if w.sel == nil {
		ref := w.notify
		w.sel = selection.New(cfg.Calendar, cfg.Calendar.Today(), func(d time.Time, sys calsys.System) {
			if ref.fn != nil {
				ref.fn(d, sys)
			}
		})
	} else {
		w.sel.SetSystem(cfg.Calendar)
	}
	w.mode = cfg.Mode
	w.ready = true
	w.rebuild()
	if w.phase == phaseUnconfigured {
		w.phase = step(w.phase, eventConfigured)
	}
	return w, nil
}

// SetDisplayMode switches between week and month. A no-op when the mode is
// unchanged or the widget is unconfigured; otherwise the ring is discarded
// and rebuilt anchored at the selected date.
func (w Widget) SetDisplayMode(mode window.Mode) Widget {
	if !w.ready || mode == w.mode {
		return w
	}
	w.mode = mode
	w.rebuild()
	return w
}

// rebuild creates fresh page views and a fresh ring anchored at the
// selection, cancelling any in-flight animation.
func (w *Widget) rebuild() {
	sel := w.sel
	readBack := func() (time.Time, bool) { return sel.Selected(), true }
	var surfaces [3]ring.Surface
	for i := range w.views {
		v := render.NewPageView(w.cfg, readBack)
		v.SetWidth(w.width)
		v.SetAnnotator(w.annotate)
		v.SetHolidays(w.holidays)
		w.views[i] = v
		surfaces[i] = v
	}
	w.rng = ring.New(w.calc, w.mode, w.sel.Selected(), surfaces)
	w.sel.Reapply(w.rng)
	w.offset = 0
	w.animSeq++
	w.anim = nil
	w.jumpDir = 0
	if w.phase != phaseUnconfigured {
		w.phase = phaseIdle
	}
}

// Select programmatically selects a date, which may lie outside the visible
// window.
func (w Widget) Select(d time.Time) Widget {
	if !w.ready {
		return w
	}
	w.sel.Select(d, w.rng)
	return w
}

// Today runs the jump-to-today procedure.
func (w Widget) Today() (Widget, tea.Cmd) {
	if !w.ready || w.phase != phaseIdle {
		return w, nil
	}
	today := w.cfg.Calendar.Today()
	if w.cfg.Calendar.SameDay(today, w.sel.Selected()) {
		return w, nil
	}
	if role, ok := w.rng.RoleContaining(today); ok {
		switch role {
		case ring.RoleCurrent:
			w.sel.Select(today, w.rng)
			return w, nil
		case ring.RoleNext:
			return w.beginCommit(eventReleaseForward)
		default:
			return w.beginCommit(eventReleaseBackward)
		}
	}
	// Today is more than one period away: aim the approach-side page one
	// period short of today, slide onto it, then slide once more so the
	// invariant-recomputed neighbor carrying today becomes current.
	target := w.calc.FromAnchor(w.mode, today)
	if today.After(w.sel.Selected()) {
		w.jumpDir = 1
		w.rng.ReloadNext(w.calc.Previous(target))
	} else {
		w.jumpDir = -1
		w.rng.ReloadPrevious(w.calc.Next(target))
	}
	w.phase = step(w.phase, eventJumpFar)
	return w.startSlide(float64(-w.jumpDir) * float64(w.width))
}

// Init implements the Bubble Tea component convention.
func (w Widget) Init() tea.Cmd { return nil }

// Update routes input and animation frames through the controller.
func (w Widget) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if !w.ready {
		return w, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			w.width = msg.Width
			for _, v := range w.views {
				v.SetWidth(msg.Width)
			}
		}
		return w, nil
	case tea.KeyMsg:
		return w.updateKey(msg)
	case tea.MouseMsg:
		return w.updateMouse(msg)
	case frameMsg:
		return w.updateFrame(msg)
	}
	return w, nil
}

func (w Widget) updateKey(msg tea.KeyMsg) (Widget, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.NextPage):
		if w.phase == phaseIdle {
			return w.beginCommit(eventReleaseForward)
		}
	case key.Matches(msg, w.keys.PrevPage):
		if w.phase == phaseIdle && !w.backwardBlocked() {
			return w.beginCommit(eventReleaseBackward)
		}
	case key.Matches(msg, w.keys.Today):
		return w.Today()
	case key.Matches(msg, w.keys.WeekMode):
		return w.SetDisplayMode(window.ModeWeek), nil
	case key.Matches(msg, w.keys.MonthMode):
		return w.SetDisplayMode(window.ModeMonth), nil
	}
	return w, nil
}

func (w Widget) updateMouse(msg tea.MouseMsg) (Widget, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return w.beginDrag(msg.X), nil
	case msg.Action == tea.MouseActionMotion && w.phase == phaseDragging:
		w.applyDragDelta(msg.X)
		return w, nil
	case msg.Action == tea.MouseActionRelease && w.phase == phaseDragging:
		return w.endDrag(msg.X, msg.Y)
	}
	return w, nil
}

// beginDrag captures the start coordinate. A press during an in-flight
// animation supersedes it: the pending rotation or jump follow-up is
// abandoned before any ring mutation happens.
func (w Widget) beginDrag(x int) Widget {
	switch w.phase {
	case phaseJumpSlide1, phaseJumpReload:
		w.abortJump()
	case phaseJumpSlide2:
		w.cancelAnim()
		w.jumpDir = 0
		w.phase = step(w.phase, eventDragBegin)
	case phaseCommitForward, phaseCommitBackward, phaseSnapping:
		w.cancelAnim()
		w.phase = step(w.phase, eventDragBegin)
	case phaseIdle:
		w.phase = step(w.phase, eventDragBegin)
	default:
		return w
	}
	if w.phase != phaseDragging {
		w.phase = step(w.phase, eventDragBegin)
	}
	w.dragX = x
	w.pressX = x
	w.dragged = false
	return w
}

// applyDragDelta translates the strip by the movement since the previous
// sample and re-captures the sample point. Rightward movement past center
// is suppressed while the previous page already shows today and past dates
// are disabled.
func (w *Widget) applyDragDelta(x int) {
	delta := float64(x - w.dragX)
	w.dragX = x
	if delta == 0 {
		return
	}
	w.offset += delta
	if w.backwardBlocked() && w.offset > 0 {
		w.offset = 0
	}
	if math.Abs(float64(x-w.pressX)) > 1 {
		w.dragged = true
	}
}

func (w Widget) endDrag(x, y int) (Widget, tea.Cmd) {
	if !w.dragged {
		w.phase = phaseIdle
		w.clickSelect(x, y)
		if w.offset != 0 {
			w.phase = step(step(w.phase, eventDragBegin), eventReleaseSnap)
			return w.startSlide(0)
		}
		return w, nil
	}
	switch {
	case w.offset < -commitThreshold:
		return w.beginCommit(eventReleaseForward)
	case w.offset > commitThreshold && !w.backwardBlocked():
		return w.beginCommit(eventReleaseBackward)
	default:
		w.phase = step(w.phase, eventReleaseSnap)
		return w.startSlide(0)
	}
}

// clickSelect resolves a click on the current page to a date and selects
// it. Disabled past days are inert.
func (w *Widget) clickSelect(x, y int) {
	view, ok := w.rng.Current().Surface().(*render.PageView)
	if !ok {
		return
	}
	d, ok := view.HitTest(x-int(math.Round(w.offset)), y)
	if !ok {
		return
	}
	if w.cfg.Categorize(d) == style.CategoryPastDisabled {
		return
	}
	w.sel.Select(d, w.rng)
}

func (w Widget) beginCommit(ev event) (Widget, tea.Cmd) {
	w.phase = step(w.phase, ev)
	switch w.phase {
	case phaseCommitForward:
		return w.startSlide(-float64(w.width))
	case phaseCommitBackward:
		return w.startSlide(float64(w.width))
	default:
		return w, nil
	}
}

func (w Widget) startSlide(target float64) (Widget, tea.Cmd) {
	w.animSeq++
	w.anim = newSlideAnim(w.animSeq, w.offset, target)
	return w, frameCmd(w.animSeq)
}

// cancelAnim invalidates the in-flight animation's frames without touching
// the ring.
func (w *Widget) cancelAnim() {
	w.animSeq++
	w.anim = nil
}

// abortJump abandons the whole jump sequence: the speculative edge reload
// is reverted so the ring stays contiguous, and the selection is left
// unchanged.
func (w *Widget) abortJump() {
	w.cancelAnim()
	if w.phase == phaseJumpSlide1 || w.phase == phaseJumpReload {
		if w.jumpDir > 0 {
			w.rng.RestoreNext()
		} else if w.jumpDir < 0 {
			w.rng.RestorePrevious()
		}
	}
	w.jumpDir = 0
	w.phase = step(w.phase, eventAnimInterrupted)
}

func (w Widget) updateFrame(msg frameMsg) (Widget, tea.Cmd) {
	// A stale sequence number means this animation was superseded; the
	// finished-flag check failed and no follow-up mutation may run.
	if w.anim == nil || msg.seq != w.animSeq {
		return w, nil
	}
	settled := w.anim.update()
	w.offset = w.anim.pos
	if !settled {
		return w, frameCmd(msg.seq)
	}
	w.anim = nil
	return w.finishSlide()
}

// finishSlide runs the state mutation gated behind a completed animation.
func (w Widget) finishSlide() (Widget, tea.Cmd) {
	switch w.phase {
	case phaseCommitForward:
		w.rng.RotateForward()
		w.offset = 0
		w.afterRotation()
		w.phase = step(w.phase, eventAnimFinished)
	case phaseCommitBackward:
		w.rng.RotateBackward()
		w.offset = 0
		w.afterRotation()
		w.phase = step(w.phase, eventAnimFinished)
	case phaseSnapping:
		w.offset = 0
		w.phase = step(w.phase, eventAnimFinished)
	case phaseJumpSlide1:
		if w.jumpDir > 0 {
			w.rng.RotateForwardRecentered()
		} else {
			w.rng.RotateBackwardRecentered()
		}
		w.offset = 0
		w.sel.Reapply(w.rng)
		w.phase = step(w.phase, eventAnimFinished)
		// The offscreen reload happened inside the recentered rotation;
		// move straight on to the second slide.
		w.phase = step(w.phase, eventReloadDone)
		return w.startSlide(float64(-w.jumpDir) * float64(w.width))
	case phaseJumpSlide2:
		if w.jumpDir > 0 {
			w.rng.RotateForward()
		} else {
			w.rng.RotateBackward()
		}
		w.offset = 0
		w.jumpDir = 0
		w.afterRotation()
		w.phase = step(w.phase, eventAnimFinished)
	}
	return w, nil
}

// afterRotation re-derives the selection highlight for the new current
// page: a page containing today selects today, otherwise the existing
// selection is re-marked without forcing today.
func (w *Widget) afterRotation() {
	today := w.cfg.Calendar.Today()
	if w.rng.Current().ContainsToday(w.calc) && !w.cfg.Calendar.SameDay(today, w.sel.Selected()) {
		w.sel.Select(today, w.rng)
		return
	}
	w.sel.Reapply(w.rng)
}

// backwardBlocked reports whether revealing the previous page is pointless:
// past dates are disabled and the previous page already contains today.
func (w Widget) backwardBlocked() bool {
	return w.cfg.PastDisabled && w.rng != nil && w.rng.Previous().ContainsToday(w.calc)
}

// View renders the three-page strip cut to the current offset.
func (w Widget) View() string {
	if !w.ready {
		return ""
	}
	render3 := func(role ring.Role) string {
		var out string
		w.rng.Pages(func(r ring.Role, p *ring.Page) {
			if r == role {
				if v, ok := p.Surface().(*render.PageView); ok {
					out = v.View()
				}
			}
		})
		return out
	}
	return render.Strip(
		render3(ring.RolePrevious),
		render3(ring.RoleCurrent),
		render3(ring.RoleNext),
		w.width,
		int(math.Round(w.offset)),
	)
}
