package analysis

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	summary lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	lucid   lipgloss.Style
	empty   lipgloss.Style
	section lipgloss.Style
	insight lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		summary: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		lucid:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		empty:   lipgloss.NewStyle().Faint(true),
		section: lipgloss.NewStyle().MarginTop(1),
		insight: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
	}
}
