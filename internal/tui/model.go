package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/hostmon/internal/model"
)

// RefreshInterval is the fixed dashboard cadence
const RefreshInterval = 2 * time.Second

// Refresher produces one snapshot per call. *collector.Collector satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) model.Snapshot
}

// Model represents the TUI application state
type Model struct {
	source Refresher

	ctx    context.Context
	cancel context.CancelFunc

	snapshot   *model.Snapshot
	refreshing bool
	width      int
	height     int
}

// Message types for Bubbletea update loop
type tickMsg time.Time

type snapshotMsg struct {
	snapshot model.Snapshot
}

// NewModel creates a new TUI model. Cancelling ctx interrupts a refresh
// that is waiting for the CPU settle delay.
func NewModel(ctx context.Context, source Refresher) Model {
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		source:     source,
		ctx:        ctx,
		cancel:     cancel,
		refreshing: true,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return refreshSnapshot(m.ctx, m.source)
}
