package ui

import "github.com/charmbracelet/lipgloss"

var (
	faintFg = lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"}
	warnFg  = lipgloss.AdaptiveColor{Light: "#D7875F", Dark: "#D7875F"}
)

type styles struct {
	title    lipgloss.Style
	accepted lipgloss.Style
	fallback lipgloss.Style
	help     lipgloss.Style
}

func newStyles(cfg Config) styles {
	accent := lipgloss.Color(cfg.Accent)
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		accepted: lipgloss.NewStyle().Foreground(accent),
		fallback: lipgloss.NewStyle().Foreground(warnFg),
		help:     lipgloss.NewStyle().Foreground(faintFg).MarginTop(1),
	}
}
