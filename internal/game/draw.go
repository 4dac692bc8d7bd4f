package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/motioncraft/internal/config"
	"github.com/iburimskiy/motioncraft/internal/page"
	"github.com/iburimskiy/motioncraft/internal/showcase"
)

var (
	primary   = color.RGBA{R: 45, G: 212, B: 191, A: 255}
	danger    = color.RGBA{R: 248, G: 113, B: 113, A: 255}
	panel     = color.RGBA{R: 18, G: 22, B: 36, A: 200}
	border    = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	headerBg  = color.RGBA{R: 10, G: 12, B: 22, A: 230}
	hoverFill = color.RGBA{R: 80, G: 100, B: 140, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	if g.field != nil {
		g.field.Draw(screenCanvas{dst: screen, scale: g.field.Transform()})
	} else {
		screen.Fill(backdrop)
	}
	if g.page == nil {
		return
	}

	ui := g.uiImage()
	ui.Clear()
	g.drawSections(ui)
	g.drawHeader(ui)
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(ui, "Error: "+g.lastErr.Error(), 12, int(g.viewport.Height)-20)
	}

	op := &ebiten.DrawImageOptions{}
	s := g.scale()
	op.GeoM.Scale(s, s)
	screen.DrawImage(ui, op)
}

func (g *Game) drawHeader(dst *ebiten.Image) {
	w := float32(g.viewport.Width)
	vector.DrawFilledRect(dst, 0, 0, w, config.HeaderHeight, headerBg, false)
	vector.StrokeLine(dst, 0, config.HeaderHeight, w, config.HeaderHeight, 1, border, false)
	ebitenutil.DebugPrintAt(dst, "MOTIONCRAFT", contentPad, config.HeaderHeight/2-8)

	for _, t := range headerTargets(g.viewport.Width, g.page.Links, g.nav.Open()) {
		b := t.box
		if t.href == "" || b.y >= config.HeaderHeight {
			fill := panel
			if t.href == "" && g.nav.Open() {
				fill = hoverFill
			}
			vector.DrawFilledRect(dst, float32(b.x), float32(b.y), float32(b.w), float32(b.h), fill, false)
			vector.StrokeRect(dst, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, border, false)
		}
		tx := int(b.x + (b.w-float64(len(t.label)*charWidth))/2)
		ty := int(b.y + b.h/2 - 8)
		ebitenutil.DebugPrintAt(dst, t.label, tx, ty)
	}
}

func (g *Game) drawSections(dst *ebiten.Image) {
	now := g.now()
	top := g.scroll.Y()
	viewH := g.viewport.Height

	for _, s := range g.page.Sections {
		if s.Bottom() < top || s.Top > top+viewH {
			continue
		}
		p := g.reveal.Progress(s.ID, now, config.RevealFade)
		if p == 0 {
			continue
		}
		// Revealed content slides up into place while it fades in.
		lift := (1 - p) * 24
		y := s.Top - top + lift
		x := float64(contentPad)

		alpha := uint8(float64(panel.A) * p)
		vector.DrawFilledRect(dst, float32(x-16), float32(y+config.HeaderHeight),
			float32(g.viewport.Width-2*x+32), float32(s.Height-config.HeaderHeight-16),
			color.RGBA{R: panel.R, G: panel.G, B: panel.B, A: alpha}, false)

		ebitenutil.DebugPrintAt(dst, s.Title, int(x), int(y+config.HeaderHeight+16))
		for i, line := range s.Lines {
			ebitenutil.DebugPrintAt(dst, line, int(x), int(y+config.HeaderHeight+48+float64(i*18)))
		}

		switch s.ID {
		case "showcase":
			g.drawTiles(dst, top-lift)
		case "contact":
			g.drawContact(dst, s, top-lift)
		}
	}

	f := g.page.Footer
	if f.Top < top+viewH {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("(c) %s Motioncraft", page.FooterYear(g.now())),
			contentPad, int(f.Top-top+f.Height/2-8))
	}
}

func (g *Game) drawTiles(dst *ebiten.Image, top float64) {
	for _, t := range g.tiles {
		b := t.Bounds
		x, y := float32(b.X), float32(b.Y-top)

		fill := panel
		if t.Hovered() {
			fill = color.RGBA{R: 28, G: 36, B: 58, A: 230}
		}
		vector.DrawFilledRect(dst, x, y, float32(b.W), float32(b.H), fill, false)
		vector.StrokeRect(dst, x, y, float32(b.W), float32(b.H), 2, border, false)
		ebitenutil.DebugPrintAt(dst, t.Title, int(x)+12, int(y)+10)

		if t.Player() == nil {
			ebitenutil.DebugPrintAt(dst, "Click to choose a preview", int(x)+12, int(y+float32(b.H)/2))
			continue
		}
		if clip, ok := t.Player().(*showcase.Clip); ok {
			drawMeter(dst, clip.Levels(), x+12, y+float32(b.H)-16, float32(b.W)-24-config.ToggleSize-8, 60)
			pos, length := clip.Progress()
			ebitenutil.DebugPrintAt(dst, showcase.FormatDuration(pos)+" / "+showcase.FormatDuration(length),
				int(x)+12, int(y)+28)
		}

		tb := t.ToggleBounds()
		tx, ty := float32(tb.X), float32(tb.Y-top)
		vector.DrawFilledRect(dst, tx, ty, float32(tb.W), float32(tb.H), hoverFill, false)
		ebitenutil.DebugPrintAt(dst, t.Label(), int(tx)+8, int(ty)+6)
	}
}

// drawMeter draws level bars upward from a baseline.
func drawMeter(dst *ebiten.Image, levels []float64, x, base, width, height float32) {
	if len(levels) == 0 {
		return
	}
	bw := width / float32(len(levels))
	for i, l := range levels {
		h := max(2, float32(l)*height)
		vector.DrawFilledRect(dst, x+float32(i)*bw, base-h, bw-1, h, meterColor(i, len(levels)), false)
	}
}

func (g *Game) drawContact(dst *ebiten.Image, s page.Section, top float64) {
	b := submitButton(s)
	x, y := float32(b.x), float32(b.y-top)

	fill := hoverFill
	if g.form.SubmitDisabled() {
		fill = border
	}
	vector.DrawFilledRect(dst, x, y, float32(b.w), float32(b.h), fill, false)
	vector.StrokeRect(dst, x, y, float32(b.w), float32(b.h), 2, primary, false)
	label := g.form.ButtonLabel()
	ebitenutil.DebugPrintAt(dst, label, int(b.x+(b.w-float64(len(label)*charWidth))/2), int(y)+10)

	msg, ok := g.form.Status()
	if msg == "" {
		return
	}
	mark := primary
	if !ok {
		mark = danger
	}
	vector.DrawFilledRect(dst, x, y+float32(b.h)+18, 8, 8, mark, false)
	ebitenutil.DebugPrintAt(dst, msg, int(x)+16, int(y)+int(b.h)+12)
}
