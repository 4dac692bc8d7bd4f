package showcase

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
)

type fakePlayer struct {
	paused  bool
	plays   int
	pauses  int
	playErr error
	closed  bool
}

func newFakePlayer() *fakePlayer { return &fakePlayer{paused: true} }

func (p *fakePlayer) Play() error {
	p.plays++
	if p.playErr != nil {
		return p.playErr
	}
	p.paused = false
	return nil
}

func (p *fakePlayer) Pause() {
	p.pauses++
	p.paused = true
}

func (p *fakePlayer) Paused() bool { return p.paused }

func (p *fakePlayer) Close() error {
	p.closed = true
	return nil
}

func newTestTile(p Player) *Tile {
	t := NewTile("Reel", p)
	t.Bounds = Rect{X: 100, Y: 100, W: 260, H: 160}
	return t
}

func TestTileHoverEdges(t *testing.T) {
	p := newFakePlayer()
	tile := newTestTile(p)

	tile.Hover(10, 10)
	if p.plays != 0 || p.pauses != 0 {
		t.Fatalf("Expected no calls while outside, got %d plays %d pauses", p.plays, p.pauses)
	}

	tile.Hover(150, 150)
	tile.Hover(160, 170)
	if p.plays != 1 || tile.Label() != LabelPlaying {
		t.Errorf("Expected one play on enter, got %d (label %q)", p.plays, tile.Label())
	}

	tile.Hover(500, 500)
	tile.Hover(600, 500)
	if p.pauses != 1 || tile.Label() != LabelPaused {
		t.Errorf("Expected one pause on leave, got %d (label %q)", p.pauses, tile.Label())
	}
}

func TestTileToggle(t *testing.T) {
	p := newFakePlayer()
	tile := newTestTile(p)
	tb := tile.ToggleBounds()
	cx, cy := tb.X+tb.W/2, tb.Y+tb.H/2

	handled, pick := tile.Click(cx, cy)
	if !handled || pick {
		t.Fatalf("Click on toggle = %v, %v", handled, pick)
	}
	if p.Paused() || tile.Label() != LabelPlaying {
		t.Error("Expected toggle to start playback")
	}

	tile.Click(cx, cy)
	if !p.Paused() || tile.Label() != LabelPaused {
		t.Error("Expected second toggle to pause")
	}

	// The body of the tile swallows clicks without toggling.
	tile.Click(110, 110)
	if p.plays != 1 || p.pauses != 1 {
		t.Errorf("Expected body click to be ignored, got %d plays %d pauses", p.plays, p.pauses)
	}

	if handled, _ := tile.Click(0, 0); handled {
		t.Error("Expected click outside the tile to fall through")
	}
}

func TestTilePlayErrorStillShowsPlaying(t *testing.T) {
	p := newFakePlayer()
	p.playErr = errors.New("no device")
	tile := newTestTile(p)

	tile.Hover(150, 150)
	if tile.Label() != LabelPlaying {
		t.Errorf("Expected label %q after failed play, got %q", LabelPlaying, tile.Label())
	}
}

func TestTileWithoutMedia(t *testing.T) {
	tile := newTestTile(nil)
	tile.Hover(150, 150)
	tile.Hover(0, 0)

	handled, pick := tile.Click(150, 150)
	if !handled || !pick {
		t.Errorf("Expected empty tile click to ask for media, got %v, %v", handled, pick)
	}
}

func TestTileSetPlayer(t *testing.T) {
	old := newFakePlayer()
	tile := newTestTile(old)
	tile.Hover(150, 150)

	next := newFakePlayer()
	tile.SetPlayer(next)
	if !old.closed {
		t.Error("Expected previous player to be closed")
	}
	if next.plays != 1 {
		t.Error("Expected new player to start while hovered")
	}
}

func TestVisualTapSnapshot(t *testing.T) {
	v := 0.0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v++
			samples[i] = [2]float64{v, -v}
		}
		return len(samples), true
	})
	tap := newVisualTap(src, 8)

	buf := make([][2]float64, 5)
	tap.Stream(buf)
	tap.Stream(buf)

	got := tap.snapshot(4)
	want := []float64{7, 8, 9, 10}
	for i := range want {
		if got[i][0] != want[i] || got[i][1] != -want[i] {
			t.Fatalf("snapshot()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if n := len(tap.snapshot(100)); n != 8 {
		t.Errorf("Expected snapshot capped at ring size, got %d", n)
	}
}

func TestBandLevels(t *testing.T) {
	levels := make([]float64, 4)

	bandLevels(make([][2]float64, 64), levels, 0.5)
	for i, l := range levels {
		if l != 0 {
			t.Errorf("band %d: expected silence, got %v", i, l)
		}
	}

	loud := make([][2]float64, 64)
	for i := range loud {
		loud[i] = [2]float64{1, 1}
	}
	bandLevels(loud, levels, 0.5)
	for i, l := range levels {
		if math.Abs(l-0.5) > 1e-12 {
			t.Errorf("band %d: expected 0.5 after one smoothed frame, got %v", i, l)
		}
	}

	// No samples leaves the meter untouched.
	bandLevels(nil, levels, 0.5)
	if levels[0] != 0.5 {
		t.Errorf("Expected levels unchanged, got %v", levels[0])
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{9 * time.Second, "00:09"},
		{75 * time.Second, "01:15"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenClipRejectsUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.ogg")
	if err := os.WriteFile(path, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenClip(path); !errors.Is(err, ErrUnsupportedMedia) {
		t.Errorf("Expected ErrUnsupportedMedia, got %v", err)
	}
}

func TestOpenClipMissingFile(t *testing.T) {
	_, err := OpenClip(filepath.Join(t.TempDir(), "missing.wav"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
