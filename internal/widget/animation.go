package widget

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	animFPS = 60
	// Spring tuning for page slides: critically damped, no overshoot.
	springFrequency = 7.0
	springDamping   = 1.0
	// Position and velocity thresholds below which a slide counts as
	// settled, in columns and columns per frame.
	settleEpsilon = 0.5
)

// frameMsg advances a slide animation. The sequence number ties a frame to
// the animation that scheduled it: a frame whose sequence no longer matches
// was superseded, which is the "finished=false" path — it must not trigger
// any follow-up state mutation.
type frameMsg struct {
	seq int
}

func frameCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}

// slideAnim moves the strip offset toward a target with spring physics.
type slideAnim struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	seq    int
}

func newSlideAnim(seq int, from, target float64) *slideAnim {
	return &slideAnim{
		spring: harmonica.NewSpring(harmonica.FPS(animFPS), springFrequency, springDamping),
		pos:    from,
		target: target,
		seq:    seq,
	}
}

// update advances one frame and reports whether the slide has settled. On
// settle the position snaps exactly onto the target.
func (a *slideAnim) update() bool {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon {
		a.pos = a.target
		return true
	}
	return false
}
