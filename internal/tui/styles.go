package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/orbit/internal/breathing"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true).
			Underline(true)

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

var phaseColors = map[breathing.Phase]lipgloss.Color{
	breathing.PhaseInhale: lipgloss.Color("42"),
	breathing.PhaseHold:   lipgloss.Color("214"),
	breathing.PhaseExhale: lipgloss.Color("69"),
}

func phaseStyle(p breathing.Phase) lipgloss.Style {
	c, ok := phaseColors[p]
	if !ok {
		c = lipgloss.Color("205")
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
