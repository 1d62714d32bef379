package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	TitleStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(Highlight)

	PromptStyle = lipgloss.NewStyle().
			Foreground(Special)

	QueryStyle = lipgloss.NewStyle().
			Foreground(Highlight)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(Subtle)
)
