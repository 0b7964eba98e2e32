package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	frame lipgloss.Style
	life  lipgloss.Style
	bar   lipgloss.Style
	title lipgloss.Style
	muted lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		frame: lipgloss.NewStyle().Foreground(t.Bits),
		life:  lipgloss.NewStyle().Foreground(t.Alive),
		bar:   lipgloss.NewStyle().Foreground(t.Text).Background(t.Bar).Bold(true),
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		muted: lipgloss.NewStyle().Foreground(t.Muted),
	}
}
