package particles

import (
	"math"
	"testing"
)

type recordingCanvas struct {
	clears int
	dots   []Dot
}

func (c *recordingCanvas) Clear() {
	c.clears++
	c.dots = c.dots[:0]
}

func (c *recordingCanvas) FillCircle(d Dot) { c.dots = append(c.dots, d) }

func TestDrawPaintsEveryParticle(t *testing.T) {
	f := newTestField(t, 400, 300)
	f.SetPointer(400, 0)
	f.Step()

	c := &recordingCanvas{}
	f.Draw(c)

	if c.clears != 1 {
		t.Errorf("Expected one clear, got %d", c.clears)
	}
	if len(c.dots) != f.Len() {
		t.Fatalf("Expected %d dots, got %d", f.Len(), len(c.dots))
	}
	for i, d := range c.dots {
		p := f.Particles()[i]
		if math.Abs(d.X-(p.Pos.X+5)) > 1e-9 || math.Abs(d.Y-(p.Pos.Y-5)) > 1e-9 {
			t.Errorf("dot %d at (%v, %v), want particle shifted by (5, -5)", i, d.X, d.Y)
		}
		if d.Radius != p.Radius {
			t.Errorf("dot %d radius %v, want %v", i, d.Radius, p.Radius)
		}
		if d.Fill.H != p.Hue || d.Fill.S != 0.9 || d.Fill.L != 0.6 || d.Fill.A != p.Alpha {
			t.Errorf("dot %d fill %+v does not match particle", i, d.Fill)
		}
		if math.Abs(d.Glow.A-p.Alpha*0.8) > 1e-12 || d.Glow.H != p.Hue {
			t.Errorf("dot %d glow %+v, want alpha %v", i, d.Glow, p.Alpha*0.8)
		}
		if d.Blur != 8 {
			t.Errorf("dot %d blur %v, want 8", i, d.Blur)
		}
	}
}

func TestDrawNilCanvas(t *testing.T) {
	f := newTestField(t, 400, 300)
	// Must not panic.
	f.Draw(nil)
}

func TestDrawBeforeStepHasNoOffset(t *testing.T) {
	f := newTestField(t, 400, 300)
	f.SetPointer(0, 0)

	c := &recordingCanvas{}
	f.Draw(c)
	for i, d := range c.dots {
		p := f.Particles()[i]
		if d.X != p.Pos.X || d.Y != p.Pos.Y {
			t.Fatalf("dot %d shifted before the first step", i)
		}
	}
}

func TestHSLAClamped(t *testing.T) {
	tests := []struct {
		name string
		in   HSLA
		want HSLA
	}{
		{"In range", HSLA{175, 0.9, 0.6, 0.5}, HSLA{175, 0.9, 0.6, 0.5}},
		{"Negative hue", HSLA{-90, 0.9, 0.6, 1}, HSLA{270, 0.9, 0.6, 1}},
		{"Full turn", HSLA{360, 0.9, 0.6, 1}, HSLA{0, 0.9, 0.6, 1}},
		{"Over range", HSLA{270, 2, -1, 3}, HSLA{270, 1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamped(); got != tt.want {
				t.Errorf("Clamped() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
