package page

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/iburimskiy/motioncraft/internal/config"
)

// settle is the distance and speed below which the scroller snaps to its
// target and stops integrating.
const settle = 0.25

// Scroller eases the page offset toward a target with a critically damped
// spring.
type Scroller struct {
	spring harmonica.Spring
	fps    int
	pos    float64
	vel    float64
	target float64
	max    float64
}

func NewScroller(fps int) *Scroller {
	s := &Scroller{}
	s.SetFPS(fps)
	return s
}

// SetFPS retunes the spring for updates arriving fps times a second, so the
// scroll takes the same wall time on any refresh rate.
func (s *Scroller) SetFPS(fps int) {
	fps = max(fps, 1)
	if fps == s.fps {
		return
	}
	s.fps = fps
	s.spring = harmonica.NewSpring(harmonica.FPS(fps), config.ScrollFrequency, config.ScrollDamping)
}

func (s *Scroller) FPS() int { return s.fps }

// SetLimit updates the scrollable range, e.g. after a resize.
func (s *Scroller) SetLimit(limit float64) {
	s.max = math.Max(limit, 0)
	s.target = clamp(s.target, 0, s.max)
	s.pos = clamp(s.pos, 0, s.max)
}

// ScrollTo starts a smooth scroll toward y.
func (s *Scroller) ScrollTo(y float64) {
	s.target = clamp(y, 0, s.max)
}

// Wheel nudges the target by dy wheel notches.
func (s *Scroller) Wheel(dy float64) {
	s.ScrollTo(s.target - dy*config.WheelStep)
}

// Update advances the spring by one frame.
func (s *Scroller) Update() {
	if s.Settled() {
		s.pos, s.vel = s.target, 0
		return
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
}

func (s *Scroller) Settled() bool {
	return math.Abs(s.target-s.pos) < settle && math.Abs(s.vel) < settle
}

func (s *Scroller) Y() float64      { return s.pos }
func (s *Scroller) Target() float64 { return s.target }
