package game

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/motioncraft/internal/config"
	"github.com/iburimskiy/motioncraft/internal/particles"
)

// glowSteps is the number of halo rings used to fake a blurred shadow.
const glowSteps = 4

var backdrop = color.RGBA{R: 8, G: 10, B: 18, A: 255}

// screenCanvas draws particles onto the physical-resolution screen. Dots
// arrive in logical units and are multiplied by scale.
type screenCanvas struct {
	dst   *ebiten.Image
	scale float64
}

func (c screenCanvas) Clear() { c.dst.Fill(backdrop) }

func (c screenCanvas) FillCircle(d particles.Dot) {
	x := float32(d.X * c.scale)
	y := float32(d.Y * c.scale)
	for _, h := range halo(d) {
		vector.DrawFilledCircle(c.dst, x, y, float32(h.radius*c.scale), hslaColor(h.color), true)
	}
	vector.DrawFilledCircle(c.dst, x, y, float32(d.Radius*c.scale), hslaColor(d.Fill), true)
}

type ring struct {
	radius float64
	color  particles.HSLA
}

// halo approximates a blur of d.Blur around the dot with stacked translucent
// rings, outermost first. Their alphas sum to the glow alpha at the centre.
func halo(d particles.Dot) []ring {
	if d.Blur <= 0 || d.Glow.A <= 0 {
		return nil
	}
	rings := make([]ring, 0, glowSteps)
	for i := glowSteps; i >= 1; i-- {
		c := d.Glow
		c.A = d.Glow.A / glowSteps
		rings = append(rings, ring{
			radius: d.Radius + d.Blur*float64(i)/glowSteps,
			color:  c,
		})
	}
	return rings
}

// hslaColor converts a particle colour for ebiten. Out of range channels are
// clamped; a conversion failure yields transparent black.
func hslaColor(c particles.HSLA) color.NRGBA {
	c = c.Clamped()
	r, g, b, err := colorconv.HSLToRGB(c.H, c.S, c.L)
	if err != nil {
		return color.NRGBA{}
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(c.A * 255))}
}

// meterColor is the fill of level bar i out of n, sweeping from teal to
// violet.
func meterColor(i, n int) color.RGBA {
	hue := config.HueTeal + (config.HueViolet-config.HueTeal)*float64(i)/float64(n)
	r, g, b, err := colorconv.HSVToRGB(hue, 0.7, 0.9)
	if err != nil {
		return color.RGBA{}
	}
	return color.RGBA{R: r, G: g, B: b, A: 200}
}
