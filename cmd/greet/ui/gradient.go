package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// HeadlineStops is the pink → purple → orange sweep used for the celebration.
var HeadlineStops = []lipgloss.Color{Pink, Purple, Orange}

// Gradient colors each rune of text along the given stops, blending in Luv
// space. Spaces are left unstyled.
func Gradient(base lipgloss.Style, text string, stops ...lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 || len(stops) == 0 {
		return base.Render(text)
	}

	colors := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(string(s))
		if err != nil {
			continue
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		return base.Render(text)
	}

	var b strings.Builder
	for i, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		c := blendAt(colors, float64(i)/float64(max(len(runes)-1, 1)))
		b.WriteString(base.Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// blendAt returns the color at position t in [0,1] along stops.
func blendAt(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	seg := t * float64(len(stops)-1)
	i := int(seg)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendLuv(stops[i+1], seg-float64(i)).Clamped()
}
