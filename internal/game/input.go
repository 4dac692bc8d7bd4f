package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/motioncraft/internal/config"
	"github.com/iburimskiy/motioncraft/internal/contact"
	"github.com/iburimskiy/motioncraft/internal/page"
	"github.com/iburimskiy/motioncraft/internal/showcase"
	"github.com/ncruces/zenity"
)

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// navTarget is a clickable header entry. An empty href marks the menu toggle.
type navTarget struct {
	label string
	href  string
	box   rect
}

const (
	charWidth  = 6 // ebitenutil debug font
	linkPad    = 24
	menuWidth  = 180
	menuRow    = 36
	toggleW    = 64
	toggleH    = 28
	buttonW    = 160
	buttonH    = 36
	contentPad = 40
)

// headerTargets lays out the header for a viewport width: inline links when
// wide, otherwise a toggle plus, while open, a dropdown of links.
func headerTargets(width float64, links []page.Link, open bool) []navTarget {
	if !page.Collapsed(width) {
		total := 0.0
		for _, l := range links {
			total += float64(len(l.Label)*charWidth + linkPad)
		}
		x := width - total - 16
		out := make([]navTarget, 0, len(links))
		for _, l := range links {
			w := float64(len(l.Label)*charWidth + linkPad)
			out = append(out, navTarget{label: l.Label, href: l.Href, box: rect{x, 0, w, config.HeaderHeight}})
			x += w
		}
		return out
	}

	out := []navTarget{{
		label: "Menu",
		box:   rect{width - toggleW - 16, (config.HeaderHeight - toggleH) / 2, toggleW, toggleH},
	}}
	if open {
		for i, l := range links {
			out = append(out, navTarget{
				label: l.Label,
				href:  l.Href,
				box:   rect{width - menuWidth - 16, config.HeaderHeight + float64(i*menuRow), menuWidth, menuRow},
			})
		}
	}
	return out
}

// layoutTiles arranges tiles in rows inside the showcase section, in
// document coordinates.
func layoutTiles(tiles []*showcase.Tile, s page.Section, width float64) {
	if len(tiles) == 0 {
		return
	}
	step := float64(config.TileWidth + config.TileGap)
	cols := max(1, min(len(tiles), int((width-contentPad*2+config.TileGap)/step)))
	rowW := float64(cols)*step - config.TileGap
	left := (width - rowW) / 2
	for i, t := range tiles {
		col, row := i%cols, i/cols
		t.Bounds = showcase.Rect{
			X: left + float64(col)*step,
			Y: s.Top + 110 + float64(row)*float64(config.TileHeight+config.TileGap),
			W: config.TileWidth,
			H: config.TileHeight,
		}
	}
}

// submitButton is the contact form's send control in document coordinates.
func submitButton(s page.Section) rect {
	return rect{contentPad, s.Top + 110, buttonW, buttonH}
}

// updatePointer tracks the mouse, or the first touch while one is down, in
// logical pixels.
func (g *Game) updatePointer() {
	scale := g.scale()
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	var x, y int
	if len(g.touches) > 0 {
		x, y = ebiten.TouchPosition(g.touches[0])
	} else {
		x, y = ebiten.CursorPosition()
	}
	g.pointerX = float64(x) / scale
	g.pointerY = float64(y) / scale
}

// pressed reports a new left click or touch in logical viewport pixels.
func (g *Game) pressed() (float64, float64, bool) {
	scale := g.scale()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return float64(x) / scale, float64(y) / scale, true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return float64(x) / scale, float64(y) / scale, true
	}
	return 0, 0, false
}

// click routes a press in viewport coordinates: header first, then widgets
// in document coordinates.
func (g *Game) click(x, y float64) {
	for _, t := range headerTargets(g.viewport.Width, g.page.Links, g.nav.Open()) {
		if !t.box.contains(x, y) {
			continue
		}
		if t.href == "" {
			g.nav.Toggle()
			return
		}
		g.follow(t.href)
		return
	}
	if y < config.HeaderHeight {
		return
	}

	docY := y + g.scroll.Y()
	for _, t := range g.tiles {
		handled, pick := t.Click(x, docY)
		if !handled {
			continue
		}
		if pick {
			g.loadTile(t)
		}
		return
	}

	if s, ok := g.page.Section("contact"); ok && submitButton(s).contains(x, docY) {
		g.sendContact()
	}
}

func (g *Game) follow(href string) {
	g.nav.Close()
	y, ok := g.page.Anchor(href)
	if !ok {
		return
	}
	g.scroll.ScrollTo(y)
}

func (g *Game) loadTile(t *showcase.Tile) {
	path, err := showcase.PickMedia(t.Title)
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	clip, err := showcase.OpenClip(path)
	if err != nil {
		g.lastErr = err
		return
	}
	log.Printf("showcase: %q now previews %s", t.Title, path)
	t.SetPlayer(clip)
}

func (g *Game) sendContact() {
	if g.form.SubmitDisabled() {
		return
	}
	fields, err := promptContact(g.form.Fields)
	if errors.Is(err, zenity.ErrCanceled) {
		return
	}
	if err != nil {
		g.lastErr = err
		return
	}
	g.form.Fields = fields
	if p, ok := g.form.Begin(); ok {
		g.submit(p)
	}
}

// promptContact collects the form fields through native entry dialogs,
// prefilled with what was typed last time.
func promptContact(prev contact.Payload) (contact.Payload, error) {
	title := zenity.Title("Contact Motioncraft")
	ask := func(label, value string) (string, error) {
		v, err := zenity.Entry(label, title, zenity.EntryText(value))
		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			return "", fmt.Errorf("prompt %s: %w", label, err)
		}
		return v, err
	}

	var p contact.Payload
	var err error
	if p.Name, err = ask("Name", prev.Name); err != nil {
		return prev, err
	}
	if p.Email, err = ask("Email", prev.Email); err != nil {
		return prev, err
	}
	if p.Message, err = ask("Message", prev.Message); err != nil {
		return prev, err
	}
	return p, nil
}
