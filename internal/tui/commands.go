package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickCmd creates a command that sends a tick message after the refresh interval
func tickCmd() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshSnapshot creates a command to run one refresh cycle
func refreshSnapshot(ctx context.Context, source Refresher) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snapshot: source.Refresh(ctx)}
	}
}
