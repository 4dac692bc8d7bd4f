// Package page models the scrolling landing page drawn over the particle
// background: its sections, the header navigation, anchor scrolling and the
// reveal-on-scroll observer.
package page

import (
	"math"
	"strings"

	"github.com/iburimskiy/motioncraft/internal/config"
)

// Section is a block of the page in document coordinates.
type Section struct {
	ID     string
	Title  string
	Lines  []string
	Top    float64
	Height float64
}

func (s Section) Bottom() float64 { return s.Top + s.Height }

// Link is a header navigation entry pointing at a section anchor.
type Link struct {
	Label string
	Href  string
}

var links = []Link{
	{Label: "Showcase", Href: "#showcase"},
	{Label: "About", Href: "#about"},
	{Label: "Contact", Href: "#contact"},
}

type sectionDef struct {
	id, title string
	lines     []string
	weight    float64 // height relative to the viewport
}

var sectionDefs = []sectionDef{
	{"hero", "Motion that moves people", []string{
		"Motioncraft designs and animates brand films, product explainers",
		"and interface motion for teams that care about the details.",
	}, 1.0},
	{"showcase", "Showcase", []string{
		"Hover a tile to preview it. Click the toggle to pause or resume.",
	}, 0.9},
	{"about", "About", []string{
		"We are a small studio of animators, illustrators and engineers.",
		"Every frame is built by hand and tuned until it feels right.",
	}, 0.7},
	{"contact", "Contact", []string{
		"Tell us about your project and we will get back to you.",
	}, 0.7},
}

// Page is the laid out document for one viewport size.
type Page struct {
	Header   float64
	Sections []Section
	Footer   Section
	Links    []Link

	viewH float64
}

// New lays the page out for a viewport of the given logical height.
func New(viewH float64) *Page {
	p := &Page{
		Header: config.HeaderHeight,
		Links:  links,
		viewH:  viewH,
	}
	top := 0.0
	for _, d := range sectionDefs {
		h := math.Max(d.weight*viewH, 2*config.HeaderHeight)
		p.Sections = append(p.Sections, Section{
			ID:     d.id,
			Title:  d.title,
			Lines:  d.lines,
			Top:    top,
			Height: h,
		})
		top += h
	}
	p.Footer = Section{ID: "footer", Top: top, Height: config.HeaderHeight}
	return p
}

// Height returns the full document height.
func (p *Page) Height() float64 { return p.Footer.Bottom() }

// MaxScroll is the largest scroll offset that keeps the viewport inside the
// document.
func (p *Page) MaxScroll() float64 {
	return math.Max(p.Height()-p.viewH, 0)
}

func (p *Page) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Anchor resolves an in-page href to the scroll offset that places the
// target just below the fixed header. Empty or bare "#" hrefs and unknown
// ids report false.
func (p *Page) Anchor(href string) (float64, bool) {
	if len(href) <= 1 || !strings.HasPrefix(href, "#") {
		return 0, false
	}
	s, ok := p.Section(href[1:])
	if !ok {
		return 0, false
	}
	y := s.Top - (p.Header + config.ScrollGap)
	return clamp(y, 0, p.MaxScroll()), true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
