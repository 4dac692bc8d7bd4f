// Package game runs the landing page as an ebiten.Game: ebiten's frame
// callback drives the particle field, the page scroll and the widgets.
package game

import (
	"context"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/motioncraft/internal/config"
	"github.com/iburimskiy/motioncraft/internal/contact"
	"github.com/iburimskiy/motioncraft/internal/page"
	"github.com/iburimskiy/motioncraft/internal/particles"
	"github.com/iburimskiy/motioncraft/internal/showcase"
)

// Options configures a Game.
type Options struct {
	// Particles enables the background field. When false the field is never
	// created and every particle call is skipped.
	Particles bool
	Count     int
	Seed      uint64 // 0 picks a random seed
	Endpoint  string
	Tiles     []*showcase.Tile
}

type Game struct {
	opts Options

	// background
	field    *particles.Field
	viewport particles.Viewport

	// page
	ui     *ebiten.Image
	page   *page.Page
	nav    page.Nav
	scroll *page.Scroller
	reveal *page.Observer
	tiles  []*showcase.Tile

	// contact form
	form    contact.Form
	client  *contact.Client
	results chan error

	// input
	prevKey  map[ebiten.Key]bool
	touches  []ebiten.TouchID
	pointerX float64
	pointerY float64

	stopped bool
	lastErr error
	now     func() time.Time
}

func New(opts Options) *Game {
	if opts.Endpoint == "" {
		opts.Endpoint = config.ContactEndpoint
	}
	return &Game{
		opts:    opts,
		scroll:  page.NewScroller(ebiten.DefaultTPS),
		reveal:  page.NewObserver(config.RevealThreshold),
		tiles:   opts.Tiles,
		client:  contact.NewClient(opts.Endpoint),
		results: make(chan error, 1),
		prevKey: map[ebiten.Key]bool{},
		now:     time.Now,
	}
}

// Stop makes the next Update end the game loop.
func (g *Game) Stop() { g.stopped = true }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Stop()
	}
	if g.stopped {
		return ebiten.Termination
	}
	if g.page == nil {
		return nil
	}

	g.updatePointer()
	if g.field != nil {
		g.field.SetPointer(g.pointerX, g.pointerY)
		g.field.Step()
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scroll.Wheel(dy)
	}
	g.scroll.SetFPS(frameRate(ebiten.ActualTPS()))
	g.scroll.Update()
	if ids := g.reveal.Check(g.page.Sections, g.scroll.Y(), g.viewport.Height, g.now()); len(ids) > 0 {
		log.Printf("reveal: %v", ids)
	}

	docY := g.pointerY + g.scroll.Y()
	for _, t := range g.tiles {
		t.Hover(g.pointerX, docY)
	}
	if x, y, ok := g.pressed(); ok {
		g.click(x, y)
	}

	select {
	case err := <-g.results:
		g.form.Finish(err)
		if err != nil {
			log.Printf("contact: %v", err)
		}
	default:
	}
	return nil
}

// LayoutF reports a backing buffer of the window size times the capped
// device scale. Any change of either rebuilds the particle field.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	vp := particles.Viewport{
		Width:            outsideWidth,
		Height:           outsideHeight,
		DevicePixelRatio: ebiten.Monitor().DeviceScaleFactor(),
	}
	g.applyViewport(vp)
	scale := g.scale()
	return math.Max(1, math.Floor(vp.Width*scale)), math.Max(1, math.Floor(vp.Height*scale))
}

// Layout is unused while LayoutF is implemented but required by ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// applyViewport rebuilds the page for vp unless it matches the current one.
// It reports whether a rebuild happened.
func (g *Game) applyViewport(vp particles.Viewport) bool {
	if g.page != nil && vp == g.viewport {
		return false
	}
	g.resize(vp)
	return true
}

// frameRate rounds the measured update rate to whole frames, falling back to
// ebiten's default before the first measurement.
func frameRate(tps float64) int {
	if tps < 1 || math.IsNaN(tps) || math.IsInf(tps, 0) {
		return ebiten.DefaultTPS
	}
	return int(math.Round(tps))
}

func (g *Game) resize(vp particles.Viewport) {
	g.viewport = vp

	if g.opts.Particles {
		if g.field == nil {
			g.field = particles.NewField(particles.Options{Count: g.opts.Count, Rand: g.rng()})
		}
		g.field.Resize(vp)
		g.field.InitParticles()
		bw, bh := g.field.BufferSize()
		log.Printf("particles: rebuilt %d for %.0fx%.0f (buffer %dx%d)", g.field.Len(), vp.Width, vp.Height, bw, bh)
	}

	g.page = page.New(vp.Height)
	for _, s := range g.page.Sections {
		g.reveal.Observe(s.ID)
	}
	g.scroll.SetLimit(g.page.MaxScroll())
	if s, ok := g.page.Section("showcase"); ok {
		layoutTiles(g.tiles, s, vp.Width)
	}
}

// uiImage returns the overlay image, reallocating it when the viewport no
// longer matches its size.
func (g *Game) uiImage() *ebiten.Image {
	w, h := max(1, int(math.Ceil(g.viewport.Width))), max(1, int(math.Ceil(g.viewport.Height)))
	if g.ui != nil && g.ui.Bounds().Dx() == w && g.ui.Bounds().Dy() == h {
		return g.ui
	}
	if g.ui != nil {
		g.ui.Deallocate()
	}
	g.ui = ebiten.NewImage(w, h)
	return g.ui
}

func (g *Game) rng() *rand.Rand {
	seed := g.opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// scale is the logical-to-physical factor of the current buffer.
func (g *Game) scale() float64 {
	if g.field != nil {
		return g.field.Transform()
	}
	return particles.DeviceScale(g.viewport.DevicePixelRatio)
}

// submit sends the form on a goroutine; the outcome comes back through
// g.results and is applied on a later Update.
func (g *Game) submit(p contact.Payload) {
	client, results := g.client, g.results
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.SubmitTimeout)
		defer cancel()
		results <- client.Submit(ctx, p)
	}()
}

// Close releases tile media.
func (g *Game) Close() {
	for _, t := range g.tiles {
		t.SetPlayer(nil)
	}
}
