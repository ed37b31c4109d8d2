// internal/tui/views/bars.go
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/hostmon/internal/model"
)

// BarWidth is the default number of cells in a progress bar
const BarWidth = 40

var (
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")) // green
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")) // yellow
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")) // red

	barLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#585B70"))
)

// BandStyle picks the colour for a clamped percentage
func BandStyle(percent uint64) lipgloss.Style {
	switch {
	case percent < 50:
		return lowStyle
	case percent < 80:
		return mediumStyle
	default:
		return highStyle
	}
}

// RenderBar renderöi yhden rivin progress barin, e.g.
//
//	CPU    : [ ████████░░░░ ]  50%
//
// The percentage is clamped to 0-100 before drawing.
func RenderBar(label string, percent float64, width int) string {
	if width <= 0 {
		width = BarWidth
	}

	clamped := model.Clamp(percent)
	filled := int(clamped) * width / 100
	empty := width - filled

	bar := BandStyle(clamped).Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))

	return fmt.Sprintf(" %s: [ %s ] %3d%%",
		barLabelStyle.Render(fmt.Sprintf("%-7s", label)), bar, clamped)
}
