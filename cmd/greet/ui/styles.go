// Package ui provides the visual styling for the greet terminal card.
// Palette follows a rose/fuchsia/indigo pastel scheme with light and dark variants.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#1e293b") // slate-800
	LightMuted      = lipgloss.Color("#475569") // slate-600
	LightFaint      = lipgloss.Color("#94a3b8") // slate-400

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f1f5f9") // slate-100
	DarkMuted      = lipgloss.Color("#cbd5e1") // slate-300
	DarkFaint      = lipgloss.Color("#64748b") // slate-500

	// Accent colors (same in both modes)
	Pink   = lipgloss.Color("#ec4899") // pink-500
	Purple = lipgloss.Color("#a855f7") // purple-500
	Orange = lipgloss.Color("#fb923c") // orange-400
	Rose   = lipgloss.Color("#f472b6") // pink-400
	White  = lipgloss.Color("#ffffff")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Faint      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Muted:      LightMuted,
		Faint:      LightFaint,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Muted:      DarkMuted,
		Faint:      DarkFaint,
		IsDark:     true,
	}
}

// ThemeFor resolves a configured theme name. "auto" (or anything unknown)
// falls back to DetectTheme.
func ThemeFor(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	}
	return DetectTheme()
}

// DetectTheme guesses the terminal background from COLORFGBG and the
// GREET_DARK_MODE override, defaulting to light.
func DetectTheme() Theme {
	if os.Getenv("GREET_DARK_MODE") == "1" {
		return DarkTheme()
	}

	// Format is usually "foreground;background"; 0-6 and 8 are dark.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil {
			if (bg >= 0 && bg <= 6) || bg == 8 {
				return DarkTheme()
			}
		}
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Text
	Message  lipgloss.Style
	Fading   lipgloss.Style
	Heading  lipgloss.Style
	Caption  lipgloss.Style
	Prompt   lipgloss.Style
	Quote    lipgloss.Style
	Headline lipgloss.Style

	// Cake
	Cake        lipgloss.Style
	CakePressed lipgloss.Style
	Counter     lipgloss.Style

	// Components
	Button    lipgloss.Style
	String    lipgloss.Style
	HelpStyle lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Message: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Align(lipgloss.Center),

		Fading: lipgloss.NewStyle().
			Foreground(theme.Faint).
			Align(lipgloss.Center),

		Heading: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Align(lipgloss.Center),

		Caption: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Italic(true).
			Align(lipgloss.Center),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Align(lipgloss.Center),

		Quote: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true).
			Align(lipgloss.Center),

		Headline: lipgloss.NewStyle().
			Bold(true),

		Cake: lipgloss.NewStyle().
			Foreground(Rose),

		CakePressed: lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true),

		Counter: lipgloss.NewStyle().
			Foreground(Pink).
			Bold(true).
			Align(lipgloss.Center),

		Button: lipgloss.NewStyle().
			Background(Purple).
			Foreground(White).
			Bold(true).
			Padding(0, 3),

		String: lipgloss.NewStyle().
			Foreground(theme.Faint),

		HelpStyle: lipgloss.NewStyle().
			Foreground(theme.Faint).
			Padding(0, 1),
	}
}
