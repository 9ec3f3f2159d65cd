package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/skillscope/models"
)

type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	ok      lipgloss.Style
	overlay lipgloss.Style
}

func newStyles(theme models.Theme) styles {
	accent, text, muted, bad, good := lipgloss.Color("212"), lipgloss.Color("252"), lipgloss.Color("244"), lipgloss.Color("203"), lipgloss.Color("114")
	if theme == models.ThemeLight {
		accent, text, muted, bad, good = lipgloss.Color("25"), lipgloss.Color("235"), lipgloss.Color("242"), lipgloss.Color("160"), lipgloss.Color("28")
	}

	return styles{
		app:     lipgloss.NewStyle().Padding(1, 2).Foreground(text),
		title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		label:   lipgloss.NewStyle().Foreground(muted),
		help:    lipgloss.NewStyle().Faint(true),
		err:     lipgloss.NewStyle().Bold(true).Foreground(bad),
		ok:      lipgloss.NewStyle().Foreground(good),
		overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
	}
}
