package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89DCEB")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#89DCEB")).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#CBA6F7"))

	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8")).Padding(1, 0, 0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585B70")).
			Padding(0, 1)
)
