// Package ring implements the three-slot page recycler behind swipe paging.
// Exactly three pages exist per display mode; rotating the ring reindexes
// them and recomputes the vacated slot's window in place, so paging through
// an unbounded date range never allocates a page.
package ring

import (
	"fmt"
	"time"

	"github.com/swipecal/swipecal/internal/window"
)

// Role is the logical position of a page within the ring. Roles are derived
// from the rotation counter; a page migrates between roles as the ring
// rotates.
type Role int

const (
	RolePrevious Role = iota
	RoleCurrent
	RoleNext
)

func (r Role) String() string {
	switch r {
	case RolePrevious:
		return "previous"
	case RoleCurrent:
		return "current"
	case RoleNext:
		return "next"
	default:
		return "unknown"
	}
}

// Surface is the rendering collaborator a page draws through. It is owned
// by the rendering layer; the ring only pushes window and highlight state
// into it.
type Surface interface {
	// SetWindow replaces the dates the surface displays.
	SetWindow(w window.Window)
	// SetSelected highlights the given date if the surface displays it.
	SetSelected(d time.Time)
	// Reapply re-highlights whatever date the surface's configuration
	// reports as selected.
	Reapply()
	// Unhighlight clears any selection highlight.
	Unhighlight()
}

// Page is one ring slot's contents: a window and the surface drawing it.
type Page struct {
	win     window.Window
	surface Surface
}

// Window returns the dates the page currently displays.
func (p *Page) Window() window.Window { return p.win }

// Surface returns the page's rendering surface.
func (p *Page) Surface() Surface { return p.surface }

func (p *Page) setWindow(w window.Window) {
	p.win = w
	if p.surface != nil {
		p.surface.SetWindow(w)
	}
}

// ContainsToday is recomputed from the page's window on every call; it is
// never cached across rotations.
func (p *Page) ContainsToday(calc window.Calculator) bool {
	return calc.ContainsToday(p.win)
}

// Ring holds exactly three pages. Logical roles map onto the fixed slot
// array through a rotation counter, so rotating never moves a page in
// memory. Invariant: previous and next windows are exactly one period
// before and after current; a violation is a programming error and panics.
type Ring struct {
	pages [3]Page
	rot   int
	calc  window.Calculator
	mode  window.Mode
}

// New builds a ring of the given mode anchored at anchor: the current slot
// receives the window containing anchor, the edges one period either side.
func New(calc window.Calculator, mode window.Mode, anchor time.Time, surfaces [3]Surface) *Ring {
	r := &Ring{calc: calc, mode: mode}
	cur := calc.FromAnchor(mode, anchor)
	for i := range r.pages {
		r.pages[i].surface = surfaces[i]
	}
	r.slot(RolePrevious).setWindow(calc.Previous(cur))
	r.slot(RoleCurrent).setWindow(cur)
	r.slot(RoleNext).setWindow(calc.Next(cur))
	r.mustBeContiguous()
	return r
}

// Mode returns the display mode the ring was built for.
func (r *Ring) Mode() window.Mode { return r.mode }

func (r *Ring) slot(role Role) *Page {
	i := (r.rot + int(role)) % 3
	if i < 0 {
		i += 3
	}
	return &r.pages[i]
}

// Previous returns the page one period before current.
func (r *Ring) Previous() *Page { return r.slot(RolePrevious) }

// Current returns the centered page.
func (r *Ring) Current() *Page { return r.slot(RoleCurrent) }

// Next returns the page one period after current.
func (r *Ring) Next() *Page { return r.slot(RoleNext) }

// Pages calls fn for each page in role order.
func (r *Ring) Pages(fn func(Role, *Page)) {
	for _, role := range []Role{RolePrevious, RoleCurrent, RoleNext} {
		fn(role, r.slot(role))
	}
}

// RoleContaining returns the role of the page whose window contains d.
func (r *Ring) RoleContaining(d time.Time) (Role, bool) {
	for _, role := range []Role{RolePrevious, RoleCurrent, RoleNext} {
		if r.calc.Contains(r.slot(role).Window(), d) {
			return role, true
		}
	}
	return 0, false
}

// RotateForward makes the next page current. The vacated previous page is
// recycled into the new next slot, its window recomputed in place.
func (r *Ring) RotateForward() {
	recycled := r.slot(RolePrevious)
	r.rot++
	recycled.setWindow(r.calc.Next(r.Current().Window()))
	r.mustBeContiguous()
}

// RotateBackward makes the previous page current. The vacated next page is
// recycled into the new previous slot, its window recomputed in place.
func (r *Ring) RotateBackward() {
	recycled := r.slot(RoleNext)
	r.rot--
	recycled.setWindow(r.calc.Previous(r.Current().Window()))
	r.mustBeContiguous()
}

// ReloadNext speculatively replaces the next page's window, e.g. ahead of a
// jump slide. The ring is non-contiguous until a recentered rotation or a
// restore follows.
func (r *Ring) ReloadNext(w window.Window) {
	r.slot(RoleNext).setWindow(w)
}

// ReloadPrevious speculatively replaces the previous page's window.
func (r *Ring) ReloadPrevious(w window.Window) {
	r.slot(RolePrevious).setWindow(w)
}

// RestoreNext recomputes the next window from current, reverting a
// speculative reload.
func (r *Ring) RestoreNext() {
	r.slot(RoleNext).setWindow(r.calc.Next(r.Current().Window()))
	r.mustBeContiguous()
}

// RestorePrevious recomputes the previous window from current.
func (r *Ring) RestorePrevious() {
	r.slot(RolePrevious).setWindow(r.calc.Previous(r.Current().Window()))
	r.mustBeContiguous()
}

// RotateForwardRecentered rotates forward through a speculatively reloaded
// next page and realigns both neighbors to the new current window.
func (r *Ring) RotateForwardRecentered() {
	recycled := r.slot(RolePrevious)
	r.rot++
	recycled.setWindow(r.calc.Next(r.Current().Window()))
	r.slot(RolePrevious).setWindow(r.calc.Previous(r.Current().Window()))
	r.mustBeContiguous()
}

// RotateBackwardRecentered rotates backward through a speculatively
// reloaded previous page and realigns both neighbors.
func (r *Ring) RotateBackwardRecentered() {
	recycled := r.slot(RoleNext)
	r.rot--
	recycled.setWindow(r.calc.Previous(r.Current().Window()))
	r.slot(RoleNext).setWindow(r.calc.Next(r.Current().Window()))
	r.mustBeContiguous()
}

func (r *Ring) mustBeContiguous() {
	cur := r.Current().Window()
	if prev := r.Previous().Window(); !r.calc.Equal(prev, r.calc.Previous(cur)) {
		panic(fmt.Sprintf("ring: previous window %s is not one period before current %s",
			prev.Anchor.Format("2006-01-02"), cur.Anchor.Format("2006-01-02")))
	}
	if next := r.Next().Window(); !r.calc.Equal(next, r.calc.Next(cur)) {
		panic(fmt.Sprintf("ring: next window %s is not one period after current %s",
			next.Anchor.Format("2006-01-02"), cur.Anchor.Format("2006-01-02")))
	}
}
