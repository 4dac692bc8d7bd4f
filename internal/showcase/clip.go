package showcase

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/iburimskiy/motioncraft/internal/config"
	"github.com/ncruces/zenity"
)

var ErrUnsupportedMedia = errors.New("showcase: unsupported media type")

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the output device once at the mixer rate. Every clip is
// resampled to that rate so tiles with different formats can share it.
func initSpeaker() error {
	speakerOnce.Do(func() {
		sr := beep.SampleRate(config.MixerRate)
		speakerErr = speaker.Init(sr, sr.N(time.Second/20))
	})
	return speakerErr
}

// Clip is a looping audio preview. It starts paused and is mixed into the
// speaker for its whole lifetime; Play and Pause only flip its control.
type Clip struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *visualTap
	levels   []float64
}

// OpenClip decodes a .wav, .mp3 or .flac file and hands it to the speaker.
func OpenClip(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if err := initSpeaker(); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	// file -> loop -> resample -> tap -> ctrl
	var src beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != config.MixerRate {
		src = beep.Resample(4, format.SampleRate, config.MixerRate, src)
	}
	t := newVisualTap(src, config.VisualRingSize)
	c := &Clip{
		file:     f,
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: t, Paused: true},
		tap:      t,
		levels:   make([]float64, config.MeterBands),
	}
	speaker.Play(c.ctrl)
	return c, nil
}

func (c *Clip) Play() error {
	speaker.Lock()
	defer speaker.Unlock()
	if c.ctrl.Streamer == nil {
		return os.ErrClosed
	}
	c.ctrl.Paused = false
	return nil
}

func (c *Clip) Pause() {
	speaker.Lock()
	c.ctrl.Paused = true
	speaker.Unlock()
}

func (c *Clip) Paused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return c.ctrl.Paused
}

// Progress returns the playback position inside the current loop and the
// clip length.
func (c *Clip) Progress() (pos, length time.Duration) {
	speaker.Lock()
	defer speaker.Unlock()
	return c.format.SampleRate.D(c.streamer.Position()), c.format.SampleRate.D(c.streamer.Len())
}

// Levels refreshes and returns the smoothed meter bands. The slice is reused
// between calls.
func (c *Clip) Levels() []float64 {
	if c.Paused() {
		for i := range c.levels {
			c.levels[i] *= config.MeterSmoothing
		}
		return c.levels
	}
	bandLevels(c.tap.snapshot(2048), c.levels, config.MeterSmoothing)
	return c.levels
}

// Close detaches the clip from the speaker and releases the file.
func (c *Clip) Close() error {
	speaker.Lock()
	c.ctrl.Streamer = nil
	speaker.Unlock()
	err := c.streamer.Close()
	_ = c.file.Close()
	return err
}

// PickMedia asks for an audio file. A cancelled dialog returns "" and no
// error.
func PickMedia(title string) (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Preview for "+title),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return filename, err
}
