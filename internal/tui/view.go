package tui

import "github.com/charmbracelet/lipgloss"

const dashboardTitle = "HOST TOP DASHBOARD"

// View renders the TUI interface
func (m Model) View() string {
	if m.snapshot == nil {
		return titleStyle.Render(dashboardTitle) + "\n\nSampling...\n"
	}
	return m.renderDashboard()
}

// renderDashboard renders the banner and the four-panel grid
func (m Model) renderDashboard() string {
	leftWidth, rightWidth := m.columnWidths()

	banner := bannerStyle.Width(leftWidth + rightWidth - 2).Render(dashboardTitle)

	topLeftPanel := m.renderSystemPanel(leftWidth)
	topRightPanel := m.renderNetworkPanel(rightWidth)
	bottomLeftPanel := m.renderProcessPanel(leftWidth)
	bottomRightPanel := m.renderDiskPanel(rightWidth)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, topLeftPanel, topRightPanel)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top, bottomLeftPanel, bottomRightPanel)

	help := helpStyle.Render("Press q or Ctrl+C to exit.")

	return lipgloss.JoinVertical(lipgloss.Left, banner, topRow, bottomRow, help)
}
