package page

import "github.com/iburimskiy/motioncraft/internal/config"

// Nav is the header menu. On narrow viewports the links hide behind a toggle.
type Nav struct {
	open bool
}

// Collapsed reports whether a viewport this wide shows the toggle instead of
// inline links.
func Collapsed(width float64) bool { return width < config.NavBreakpoint }

// Toggle flips the menu and returns the new expanded state.
func (n *Nav) Toggle() bool {
	n.open = !n.open
	return n.open
}

// Close is called whenever a link is followed.
func (n *Nav) Close() { n.open = false }

func (n *Nav) Open() bool { return n.open }
