package rituals

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	category   lipgloss.Style
	name       lipgloss.Style
	meta       lipgloss.Style
	done       lipgloss.Style
	detail     lipgloss.Style
	step       lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		category:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		name:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		done:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		step:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
