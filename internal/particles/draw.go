package particles

import (
	"math"

	"github.com/iburimskiy/motioncraft/internal/config"
)

// HSLA is a colour in hue (degrees), saturation, lightness and alpha, the
// last three in [0, 1].
type HSLA struct {
	H, S, L, A float64
}

// Clamped returns c with the hue wrapped into [0, 360) and the other
// channels limited to [0, 1].
func (c HSLA) Clamped() HSLA {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	unit := func(v float64) float64 { return math.Max(0, math.Min(1, v)) }
	return HSLA{H: h, S: unit(c.S), L: unit(c.L), A: unit(c.A)}
}

// Dot is one glowing circle in logical coordinates.
type Dot struct {
	X, Y   float64
	Radius float64
	Fill   HSLA
	Glow   HSLA
	Blur   float64
}

// Canvas is the 2D surface the field draws into. Implementations map
// logical coordinates to their own pixels.
type Canvas interface {
	Clear()
	FillCircle(d Dot)
}

// Draw clears c and paints every particle shifted by the parallax offset
// computed on the last Step. A nil canvas draws nothing.
func (f *Field) Draw(c Canvas) {
	if c == nil {
		return
	}
	c.Clear()
	for _, p := range f.particles {
		c.FillCircle(f.dot(p))
	}
}

func (f *Field) dot(p Particle) Dot {
	fill := HSLA{H: p.Hue, S: config.ParticleSaturation, L: config.ParticleLightness, A: p.Alpha}
	glow := fill
	glow.A = p.Alpha * config.GlowAlphaFactor
	return Dot{
		X:      p.Pos.X + f.parallax.X,
		Y:      p.Pos.Y + f.parallax.Y,
		Radius: p.Radius,
		Fill:   fill,
		Glow:   glow,
		Blur:   config.GlowBlur,
	}
}
