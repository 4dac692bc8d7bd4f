// Package showcase implements the hover-to-preview project tiles. Pointing
// at a tile starts its media, leaving pauses it, and the corner toggle flips
// playback by hand.
package showcase

import (
	"io"
	"log"

	"github.com/iburimskiy/motioncraft/internal/config"
)

const (
	LabelPlaying = "||"
	LabelPaused  = ">"
)

// Player is the media behind a tile.
type Player interface {
	Play() error
	Pause()
	Paused() bool
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Tile struct {
	Title  string
	Bounds Rect

	player  Player
	hovered bool
	label   string
}

func NewTile(title string, p Player) *Tile {
	return &Tile{Title: title, player: p, label: LabelPaused}
}

// SetPlayer replaces the tile's media, closing the previous one.
func (t *Tile) SetPlayer(p Player) {
	if c, ok := t.player.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Printf("showcase: close %q: %v", t.Title, err)
		}
	}
	t.player = p
	t.label = LabelPaused
	if p != nil && t.hovered {
		t.play()
	}
}

func (t *Tile) Player() Player { return t.player }

// ToggleBounds is the play/pause button in the tile's lower right corner.
func (t *Tile) ToggleBounds() Rect {
	s := float64(config.ToggleSize)
	return Rect{
		X: t.Bounds.X + t.Bounds.W - s - 8,
		Y: t.Bounds.Y + t.Bounds.H - s - 8,
		W: s,
		H: s,
	}
}

// Hover feeds the pointer position. Entering the tile starts playback and
// leaving it pauses.
func (t *Tile) Hover(x, y float64) {
	inside := t.Bounds.Contains(x, y)
	if inside == t.hovered {
		return
	}
	t.hovered = inside
	if t.player == nil {
		return
	}
	if inside {
		t.play()
	} else {
		t.pause()
	}
}

// Click handles a press at (x, y). It reports whether the tile consumed the
// click and whether the tile asked for media to be picked.
func (t *Tile) Click(x, y float64) (handled, pick bool) {
	if !t.Bounds.Contains(x, y) {
		return false, false
	}
	if t.player == nil {
		return true, true
	}
	if t.ToggleBounds().Contains(x, y) {
		if t.player.Paused() {
			t.play()
		} else {
			t.pause()
		}
	}
	return true, false
}

func (t *Tile) play() {
	if err := t.player.Play(); err != nil {
		log.Printf("showcase: play %q: %v", t.Title, err)
	}
	t.label = LabelPlaying
}

func (t *Tile) pause() {
	t.player.Pause()
	t.label = LabelPaused
}

func (t *Tile) Hovered() bool { return t.hovered }
func (t *Tile) Label() string { return t.label }
