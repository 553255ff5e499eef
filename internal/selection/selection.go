// Package selection owns the single authoritative selected date.
package selection

import (
	"time"

	"github.com/swipecal/swipecal/internal/calsys"
	"github.com/swipecal/swipecal/internal/ring"
	"github.com/swipecal/swipecal/internal/window"
)

// OnChange is invoked after the selected date changes.
type OnChange func(date time.Time, sys calsys.System)

// State is the single source of truth for the selected date. It keeps a
// non-owning record of the highlighted date and resolves it through the
// active ring when unhighlighting, since the page that drew the highlight
// may have been recycled out from under it.
type State struct {
	sys      calsys.System
	selected time.Time
	marked   time.Time
	hasMark  bool
	onChange OnChange
}

// New constructs selection state with an initial date. The initial date is
// not announced through the callback.
func New(sys calsys.System, initial time.Time, onChange OnChange) *State {
	return &State{
		sys:      sys,
		selected: sys.StartOfDay(initial),
		onChange: onChange,
	}
}

// Selected returns the currently selected date.
func (s *State) Selected() time.Time { return s.selected }

// SetSystem swaps the calendar system after a delegate reconfiguration, so
// later selections normalize and announce through the new system. The
// selected date is re-normalized; no notification fires.
func (s *State) SetSystem(sys calsys.System) {
	s.sys = sys
	s.selected = sys.StartOfDay(s.selected)
}

// Select unhighlights the previously marked page, records d as selected,
// highlights the page displaying d (if visible) and fires the change
// notification. Dates outside the visible window are accepted.
func (s *State) Select(d time.Time, rng *ring.Ring) {
	s.unmark(rng)
	s.selected = s.sys.StartOfDay(d)
	s.mark(rng)
	if s.onChange != nil {
		s.onChange(s.selected, s.sys)
	}
}

// SelectToday selects today when it falls within the current page's window
// and reports whether it did. Otherwise the caller runs the jump-to-today
// procedure.
func (s *State) SelectToday(rng *ring.Ring, calc window.Calculator) bool {
	if rng == nil || !calc.ContainsToday(rng.Current().Window()) {
		return false
	}
	s.Select(s.sys.Today(), rng)
	return true
}

// Reapply re-derives the highlight after a rotation or rebuild: the page
// displaying the selected date is highlighted, every other page cleared.
func (s *State) Reapply(rng *ring.Ring) {
	s.hasMark = false
	s.mark(rng)
}

func (s *State) mark(rng *ring.Ring) {
	if rng == nil {
		return
	}
	if role, ok := rng.RoleContaining(s.selected); ok {
		rng.Pages(func(pr ring.Role, p *ring.Page) {
			if p.Surface() == nil {
				return
			}
			if pr == role {
				p.Surface().SetSelected(s.selected)
			} else {
				p.Surface().Unhighlight()
			}
		})
		s.marked = s.selected
		s.hasMark = true
		return
	}
	rng.Pages(func(_ ring.Role, p *ring.Page) {
		if p.Surface() != nil {
			p.Surface().Unhighlight()
		}
	})
}

func (s *State) unmark(rng *ring.Ring) {
	if !s.hasMark || rng == nil {
		return
	}
	if role, ok := rng.RoleContaining(s.marked); ok {
		if surf := pageSurface(rng, role); surf != nil {
			surf.Unhighlight()
		}
	}
	s.hasMark = false
}

func pageSurface(rng *ring.Ring, role ring.Role) ring.Surface {
	var surf ring.Surface
	rng.Pages(func(r ring.Role, p *ring.Page) {
		if r == role {
			surf = p.Surface()
		}
	})
	return surf
}
