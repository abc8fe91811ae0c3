package ui

// Layout constants
const (
	MinimumTerminalWidth  = 40
	MinimumTerminalHeight = 12
	FallbackWidth         = 80
	FallbackHeight        = 24

	MessageMaxWidth = 60
	BlockMargin     = 4
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of r and o, or the zero Rect when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Within moves r, given relative to outer's origin, onto the screen and
// clips it to outer.
func (r Rect) Within(outer Rect) Rect {
	return Rect{X: outer.X + r.X, Y: outer.Y + r.Y, W: r.W, H: r.H}.Intersect(outer)
}

// Screen returns usable dimensions, substituting fallbacks before the first
// WindowSizeMsg and clamping to the minimum.
func Screen(width, height int) (int, int) {
	if width <= 0 {
		width = FallbackWidth
	}
	if height <= 0 {
		height = FallbackHeight
	}
	return max(width, MinimumTerminalWidth), max(height, MinimumTerminalHeight)
}

// TextWidth is the wrap width for centered messages on a screen of width w.
func TextWidth(w int) int {
	return max(min(w-BlockMargin*2, MessageMaxWidth), 10)
}
