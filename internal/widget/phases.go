package widget

// phase is the controller's transition state. A single swipe runs
// Idle -> Dragging -> {Committing, Snapping} -> Idle; jump-to-today's
// far path runs Idle -> JumpSlide1 -> JumpReload -> JumpSlide2 -> Idle.
type phase int

const (
	phaseUnconfigured phase = iota
	phaseIdle
	phaseDragging
	phaseCommitForward
	phaseCommitBackward
	phaseSnapping
	phaseJumpSlide1
	phaseJumpReload
	phaseJumpSlide2
)

func (p phase) String() string {
	switch p {
	case phaseUnconfigured:
		return "unconfigured"
	case phaseIdle:
		return "idle"
	case phaseDragging:
		return "dragging"
	case phaseCommitForward:
		return "committing-forward"
	case phaseCommitBackward:
		return "committing-backward"
	case phaseSnapping:
		return "snapping"
	case phaseJumpSlide1:
		return "jump-slide-1"
	case phaseJumpReload:
		return "jump-reload"
	case phaseJumpSlide2:
		return "jump-slide-2"
	default:
		return "unknown"
	}
}

// committing reports whether a transition is being finalized. No second
// transition may start while one is committing.
func (p phase) committing() bool {
	switch p {
	case phaseCommitForward, phaseCommitBackward, phaseJumpSlide1, phaseJumpReload, phaseJumpSlide2:
		return true
	default:
		return false
	}
}

// event is an input to the transition table.
type event int

const (
	eventConfigured event = iota
	eventDragBegin
	eventReleaseForward
	eventReleaseBackward
	eventReleaseSnap
	eventAnimFinished
	eventAnimInterrupted
	eventJumpFar
	eventReloadDone
)

// step is the pure transition function. Side effects (rotations, reloads,
// animation starts) belong to the caller; anything not in the table keeps
// its phase.
func step(p phase, ev event) phase {
	switch p {
	case phaseUnconfigured:
		if ev == eventConfigured {
			return phaseIdle
		}
	case phaseIdle:
		switch ev {
		case eventDragBegin:
			return phaseDragging
		case eventJumpFar:
			return phaseJumpSlide1
		// Programmatic paging (keys, jump-to-adjacent) commits without a
		// preceding drag.
		case eventReleaseForward:
			return phaseCommitForward
		case eventReleaseBackward:
			return phaseCommitBackward
		}
	case phaseDragging:
		switch ev {
		case eventReleaseForward:
			return phaseCommitForward
		case eventReleaseBackward:
			return phaseCommitBackward
		case eventReleaseSnap:
			return phaseSnapping
		}
	case phaseCommitForward, phaseCommitBackward, phaseSnapping:
		switch ev {
		case eventAnimFinished, eventAnimInterrupted:
			return phaseIdle
		case eventDragBegin:
			return phaseDragging
		}
	case phaseJumpSlide1:
		switch ev {
		case eventAnimFinished:
			return phaseJumpReload
		case eventAnimInterrupted, eventDragBegin:
			return phaseIdle
		}
	case phaseJumpReload:
		switch ev {
		case eventReloadDone:
			return phaseJumpSlide2
		case eventAnimInterrupted, eventDragBegin:
			return phaseIdle
		}
	case phaseJumpSlide2:
		switch ev {
		case eventAnimFinished, eventAnimInterrupted, eventDragBegin:
			return phaseIdle
		}
	}
	return p
}
