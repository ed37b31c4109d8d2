package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model state.
// Only one refresh is in flight at a time: the next tick is scheduled when
// the previous snapshot arrives.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case tickMsg:
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, refreshSnapshot(m.ctx, m.source)

	case snapshotMsg:
		snap := msg.snapshot
		m.snapshot = &snap
		m.refreshing = false
		if m.ctx.Err() != nil {
			return m, nil
		}
		return m, tickCmd()
	}

	return m, nil
}
