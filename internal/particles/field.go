// Package particles implements the drifting background particle field: a
// fixed-size set of glowing dots that wrap around the viewport and shift
// slightly with the pointer.
package particles

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/motioncraft/internal/config"
)

// Vec2 is a point or offset in logical pixels.
type Vec2 struct {
	X, Y float64
}

// Particle is one dot of the field. Only Pos changes after creation.
type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Hue    float64
	Alpha  float64
}

// Viewport describes the hosting window in logical pixels.
type Viewport struct {
	Width, Height    float64
	DevicePixelRatio float64
}

// Options tunes a Field. Zero values fall back to the config defaults.
type Options struct {
	Count int
	Rand  *rand.Rand
}

// Field owns the particle set and the viewport it lives in.
// It is not safe for concurrent use; the frame loop is its only caller.
type Field struct {
	count     int
	rng       *rand.Rand
	particles []Particle

	width, height     float64
	scale             float64
	bufferW, bufferH  int
	pointer, parallax Vec2
}

func NewField(opts Options) *Field {
	count := opts.Count
	if count <= 0 {
		count = config.ParticleCount
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{
		count:     count,
		rng:       rng,
		particles: make([]Particle, 0, count),
		scale:     1,
	}
}

// Resize adopts a new viewport. The backing buffer is the logical size times
// the device pixel ratio, capped at config.MaxDeviceScale.
func (f *Field) Resize(vp Viewport) {
	f.width = math.Max(vp.Width, 0)
	f.height = math.Max(vp.Height, 0)

	f.scale = DeviceScale(vp.DevicePixelRatio)
	f.bufferW = int(math.Floor(f.width * f.scale))
	f.bufferH = int(math.Floor(f.height * f.scale))
}

// DeviceScale caps a device pixel ratio at config.MaxDeviceScale. Unknown
// ratios count as 1.
func DeviceScale(dpr float64) float64 {
	if dpr <= 0 || math.IsNaN(dpr) {
		return 1
	}
	return math.Min(dpr, config.MaxDeviceScale)
}

// InitParticles discards the current set and generates a fresh one sized to
// the current viewport.
func (f *Field) InitParticles() {
	f.particles = f.particles[:0]
	for i := 0; i < f.count; i++ {
		hue := config.HueViolet
		if f.rng.Float64() < 0.5 {
			hue = config.HueTeal
		}
		f.particles = append(f.particles, Particle{
			Pos: Vec2{
				X: f.rng.Float64() * f.width,
				Y: f.rng.Float64() * f.height,
			},
			Vel: Vec2{
				X: (f.rng.Float64() - 0.5) * config.VelocitySpread,
				Y: (f.rng.Float64() - 0.5) * config.VelocitySpread,
			},
			Radius: f.rng.Float64()*config.RadiusSpread + config.RadiusMin,
			Hue:    hue,
			Alpha:  f.rng.Float64()*config.AlphaSpread + config.AlphaMin,
		})
	}
}

// SetPointer records the last pointer position. Non-finite coordinates are
// dropped and the previous position is kept.
func (f *Field) SetPointer(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	f.pointer = Vec2{X: x, Y: y}
}

// Step advances the simulation by one frame.
func (f *Field) Step() {
	f.parallax = f.Parallax()
	for i := range f.particles {
		p := &f.particles[i]
		p.Pos.X = wrap(p.Pos.X+p.Vel.X, f.width)
		p.Pos.Y = wrap(p.Pos.Y+p.Vel.Y, f.height)
	}
}

// Parallax returns the offset applied to every particle for the current
// pointer position. Each component lies in [-A/2, A/2] while the pointer is
// inside the viewport, A being config.ParallaxAmplitude.
func (f *Field) Parallax() Vec2 {
	var off Vec2
	if f.width > 0 {
		off.X = (f.pointer.X/f.width - 0.5) * config.ParallaxAmplitude
	}
	if f.height > 0 {
		off.Y = (f.pointer.Y/f.height - 0.5) * config.ParallaxAmplitude
	}
	return off
}

// wrap teleports a coordinate that left [-margin, limit+margin] to the
// opposite edge of that band.
func wrap(v, limit float64) float64 {
	if v < -config.WrapMargin {
		v = limit + config.WrapMargin
	}
	if v > limit+config.WrapMargin {
		v = -config.WrapMargin
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (f *Field) Particles() []Particle { return f.particles }
func (f *Field) Len() int               { return len(f.particles) }
func (f *Field) Pointer() Vec2          { return f.pointer }

// Size returns the logical viewport size.
func (f *Field) Size() (float64, float64) { return f.width, f.height }

// BufferSize returns the physical pixel size of the backing surface.
func (f *Field) BufferSize() (int, int) { return f.bufferW, f.bufferH }

// Transform returns the logical-to-physical scale factor.
func (f *Field) Transform() float64 { return f.scale }
