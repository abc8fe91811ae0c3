package ui

import (
	"math"
	"strings"
	"time"

	"greetcard/internal/decor"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r     rune
	color lipgloss.Color
}

// Canvas is a fixed-size grid of colored runes used for the particle fields.
// Empty cells render as spaces.
type Canvas struct {
	w, h  int
	cells []cell
}

// NewCanvas allocates an empty canvas.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	return &Canvas{w: w, h: h, cells: make([]cell, w*h)}
}

// Set paints one cell. Out-of-range coordinates are ignored so particles can
// drift off screen.
func (c *Canvas) Set(x, y int, r rune, color lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, color: color}
}

// At returns the rune at (x, y), or 0 when empty or out of range.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y*c.w+x].r
}

// Span renders columns [from, to) of row y, merging runs of one color into a
// single styled segment.
func (c *Canvas) Span(y, from, to int) string {
	from, to = max(from, 0), min(to, c.w)
	if y < 0 || y >= c.h || from >= to {
		return ""
	}
	var b strings.Builder
	var run strings.Builder
	var runColor lipgloss.Color
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runColor == "" {
			b.WriteString(run.String())
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
		}
		run.Reset()
	}
	for x := from; x < to; x++ {
		cl := c.cells[y*c.w+x]
		r := cl.r
		if r == 0 {
			r = ' '
			cl.color = ""
		}
		if cl.color != runColor {
			flush()
			runColor = cl.color
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}

// column maps a percent position onto a canvas column.
func (c *Canvas) column(x float64) int {
	return int(math.Round(x / 100 * float64(c.w-1)))
}

// DrawBalloons paints balloons rising from below the bottom edge to above
// the top edge over each item's duration.
func DrawBalloons(c *Canvas, items []decor.Item, elapsed time.Duration, stringColor lipgloss.Color) {
	travel := float64(c.h)*1.2 + 2
	for _, it := range items {
		frac, started := it.Progress(elapsed)
		if !started {
			continue
		}
		x := c.column(it.X)
		y := int(math.Round(float64(c.h) - frac*travel))
		c.Set(x, y, '●', lipgloss.Color(it.Color))
		c.Set(x, y+1, '│', stringColor)
	}
}

var confettiGlyphs = []rune{'•', '▪', '◆', '*'}

// DrawConfetti paints confetti falling from the top. Pieces dim to a dot for
// the last part of their fall and vanish when done.
func DrawConfetti(c *Canvas, items []decor.Item, elapsed time.Duration) {
	for _, it := range items {
		frac, started := it.Progress(elapsed)
		if !started || frac >= 1 {
			continue
		}
		glyph := confettiGlyphs[it.ID%len(confettiGlyphs)]
		if frac > 0.8 {
			glyph = '·'
		}
		c.Set(c.column(it.X), int(frac*float64(c.h)), glyph, lipgloss.Color(it.Color))
	}
}

// Compose centers block over the canvas, letting particles show through on
// either side of it. offset shifts the block down by that many rows. Rows
// that fall past the canvas are not drawn; the returned rectangle covers only
// the part of the block that was.
func Compose(c *Canvas, block string, offset int) (string, Rect) {
	lines := strings.Split(block, "\n")
	bw := lipgloss.Width(block)
	bh := len(lines)
	x := max((c.w-bw)/2, 0)
	y := max((c.h-bh)/2+offset, 0)

	rows := make([]string, c.h)
	for row := 0; row < c.h; row++ {
		i := row - y
		if i < 0 || i >= bh {
			rows[row] = c.Span(row, 0, c.w)
			continue
		}
		line := lipgloss.PlaceHorizontal(bw, lipgloss.Center, lines[i])
		rows[row] = c.Span(row, 0, x) + line + c.Span(row, x+bw, c.w)
	}
	rect := Rect{X: x, Y: y, W: bw, H: bh}.Intersect(Rect{W: c.w, H: c.h})
	return strings.Join(rows, "\n"), rect
}
