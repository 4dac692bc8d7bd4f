package showcase

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// visualTap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the tile can draw a level meter from what is currently playing.
type visualTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func newVisualTap(src beep.Streamer, ringSize int) *visualTap {
	return &visualTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *visualTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex = (t.nextIndex + 1) % len(t.buffer)
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *visualTap) Err() error { return t.Source.Err() }

// snapshot returns the last n samples in chronological order.
func (t *visualTap) snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, len(t.buffer))
	out := make([][2]float64, n)
	start := t.nextIndex - n
	if start < 0 {
		start += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[(start+i)%len(t.buffer)]
	}
	return out
}

// bandLevels folds samples into len(levels) RMS bands, compresses them for
// display and smooths them into levels in place.
func bandLevels(samples [][2]float64, levels []float64, smoothing float64) {
	bands := len(levels)
	if bands == 0 || len(samples) == 0 {
		return
	}
	size := max(1, len(samples)/bands)
	for i := 0; i < bands; i++ {
		start := i * size
		if start >= len(samples) {
			break
		}
		end := min(start+size, len(samples))

		var sumSquares float64
		for _, s := range samples[start:end] {
			mono := (s[0] + s[1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(end-start))
		levels[i] = smoothing*levels[i] + (1-smoothing)*clamp01(math.Pow(rms, 0.3))
	}
}
