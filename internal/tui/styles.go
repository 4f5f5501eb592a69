package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorIdle   = lipgloss.Color("240") // gray
	colorActive = lipgloss.Color("46")  // green
	colorError  = lipgloss.Color("196") // red

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			PaddingLeft(1).
			PaddingRight(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginTop(1).
			MarginBottom(0)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

func stateIcon(state string) string {
	switch state {
	case "active":
		return "⚔️"
	case "idle":
		return "💤"
	default:
		return "❓"
	}
}

func stateColor(state string) lipgloss.Color {
	switch state {
	case "active":
		return colorActive
	case "idle":
		return colorIdle
	default:
		return lipgloss.Color("252")
	}
}
