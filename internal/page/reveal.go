package page

import (
	"math"
	"strconv"
	"time"
)

// Observer marks sections visible the first time enough of them scrolls
// into view. Revealed sections stop being observed.
type Observer struct {
	threshold float64
	pending   map[string]bool
	revealed  map[string]time.Time
}

func NewObserver(threshold float64) *Observer {
	return &Observer{
		threshold: threshold,
		pending:   map[string]bool{},
		revealed:  map[string]time.Time{},
	}
}

func (o *Observer) Observe(id string) {
	if _, done := o.revealed[id]; done {
		return
	}
	o.pending[id] = true
}

// Check tests every pending section against the viewport
// [scrollY, scrollY+viewH) and returns the ids revealed by this call.
func (o *Observer) Check(sections []Section, scrollY, viewH float64, now time.Time) []string {
	var out []string
	for _, s := range sections {
		if !o.pending[s.ID] {
			continue
		}
		r := IntersectionRatio(s, scrollY, viewH)
		if r > 0 && r >= o.threshold {
			delete(o.pending, s.ID)
			o.revealed[s.ID] = now
			out = append(out, s.ID)
		}
	}
	return out
}

// Revealed returns when id became visible.
func (o *Observer) Revealed(id string) (time.Time, bool) {
	t, ok := o.revealed[id]
	return t, ok
}

// Progress returns how far the fade-in of id has run at now, in [0, 1].
// Sections that are not revealed yet report 0.
func (o *Observer) Progress(id string, now time.Time, fade time.Duration) float64 {
	t, ok := o.revealed[id]
	if !ok {
		return 0
	}
	if fade <= 0 {
		return 1
	}
	return math.Min(float64(now.Sub(t))/float64(fade), 1)
}

// IntersectionRatio is the fraction of s inside the viewport.
func IntersectionRatio(s Section, scrollY, viewH float64) float64 {
	if s.Height <= 0 {
		return 0
	}
	top := math.Max(s.Top, scrollY)
	bottom := math.Min(s.Bottom(), scrollY+viewH)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / s.Height
}

// FooterYear is the copyright year shown in the footer.
func FooterYear(now time.Time) string {
	return strconv.Itoa(now.Year())
}
