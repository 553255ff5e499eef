package widget

import "testing"

func TestStepTransitions(t *testing.T) {
	tests := []struct {
		name string
		from phase
		ev   event
		want phase
	}{
		{"configure", phaseUnconfigured, eventConfigured, phaseIdle},
		{"begin drag", phaseIdle, eventDragBegin, phaseDragging},
		{"release commits forward", phaseDragging, eventReleaseForward, phaseCommitForward},
		{"release commits backward", phaseDragging, eventReleaseBackward, phaseCommitBackward},
		{"release snaps", phaseDragging, eventReleaseSnap, phaseSnapping},
		{"commit settles", phaseCommitForward, eventAnimFinished, phaseIdle},
		{"commit interrupted", phaseCommitBackward, eventAnimInterrupted, phaseIdle},
		{"drag supersedes commit", phaseCommitForward, eventDragBegin, phaseDragging},
		{"snap settles", phaseSnapping, eventAnimFinished, phaseIdle},
		{"programmatic forward", phaseIdle, eventReleaseForward, phaseCommitForward},
		{"programmatic backward", phaseIdle, eventReleaseBackward, phaseCommitBackward},
		{"jump starts", phaseIdle, eventJumpFar, phaseJumpSlide1},
		{"jump slide 1 settles", phaseJumpSlide1, eventAnimFinished, phaseJumpReload},
		{"jump reload done", phaseJumpReload, eventReloadDone, phaseJumpSlide2},
		{"jump slide 2 settles", phaseJumpSlide2, eventAnimFinished, phaseIdle},
		{"jump slide 1 aborts", phaseJumpSlide1, eventAnimInterrupted, phaseIdle},
		{"jump reload aborts", phaseJumpReload, eventAnimInterrupted, phaseIdle},
		{"jump slide 2 aborts", phaseJumpSlide2, eventAnimInterrupted, phaseIdle},
		{"unknown event keeps phase", phaseDragging, eventAnimFinished, phaseDragging},
		{"unconfigured ignores drag", phaseUnconfigured, eventDragBegin, phaseUnconfigured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := step(tt.from, tt.ev); got != tt.want {
				t.Fatalf("step(%v, %d) = %v, want %v", tt.from, tt.ev, got, tt.want)
			}
		})
	}
}

func TestEveryInterruptionReachesIdleWithoutRotation(t *testing.T) {
	for _, p := range []phase{
		phaseCommitForward, phaseCommitBackward, phaseSnapping,
		phaseJumpSlide1, phaseJumpReload, phaseJumpSlide2,
	} {
		if got := step(p, eventAnimInterrupted); got != phaseIdle {
			t.Fatalf("step(%v, interrupted) = %v, want idle", p, got)
		}
	}
}

func TestCommittingPhases(t *testing.T) {
	committing := []phase{
		phaseCommitForward, phaseCommitBackward,
		phaseJumpSlide1, phaseJumpReload, phaseJumpSlide2,
	}
	for _, p := range committing {
		if !p.committing() {
			t.Fatalf("%v should count as committing", p)
		}
	}
	for _, p := range []phase{phaseUnconfigured, phaseIdle, phaseDragging, phaseSnapping} {
		if p.committing() {
			t.Fatalf("%v should not count as committing", p)
		}
	}
}
