package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the viewer
type Theme struct {
	Name   string
	Bits   lipgloss.Color // sextant glyphs while browsing
	Alive  lipgloss.Color // sextant glyphs while life runs
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Bar    lipgloss.Color // info bar background
}

// Available themes
var (
	ThemeMono = Theme{
		Name:   "mono",
		Bits:   lipgloss.Color("#e8e8e8"),
		Alive:  lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#1c1c1c"),
		Muted:  lipgloss.Color("#777777"),
		Accent: lipgloss.Color("#ffffff"),
		Bar:    lipgloss.Color("#c0c0c0"),
	}

	ThemeAmber = Theme{
		Name:   "amber",
		Bits:   lipgloss.Color("#ffb000"), // P3 phosphor
		Alive:  lipgloss.Color("#ffd75f"),
		Text:   lipgloss.Color("#1a1000"),
		Muted:  lipgloss.Color("#805800"),
		Accent: lipgloss.Color("#ffd75f"),
		Bar:    lipgloss.Color("#b37b00"),
	}

	ThemeGreen = Theme{
		Name:   "green",
		Bits:   lipgloss.Color("#33ff33"), // P1 phosphor
		Alive:  lipgloss.Color("#aaffaa"),
		Text:   lipgloss.Color("#001500"),
		Muted:  lipgloss.Color("#1a801a"),
		Accent: lipgloss.Color("#aaffaa"),
		Bar:    lipgloss.Color("#24b324"),
	}

	// All available themes
	Themes = []Theme{
		ThemeMono,
		ThemeAmber,
		ThemeGreen,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
