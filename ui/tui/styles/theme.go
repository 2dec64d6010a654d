package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	HPHealthy = lipgloss.Color("#73F59F")
	HPLow     = lipgloss.Color("#F25D94")
	HPUnknown = lipgloss.Color("#626262")
	BarEmpty  = lipgloss.Color("#3A3A3A")

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Padding(0, 1).
			Italic(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1).
			Margin(0, 1)

	BadgeOn = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("#000")).
		Background(HPHealthy)

	BadgeOff = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#626262"))

	BadgeAlert = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFF")).
			Background(HPLow)

	HelpStyle = lipgloss.NewStyle().Foreground(Subtle)
)
