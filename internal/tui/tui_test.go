package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/hostmon/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	snap  model.Snapshot
	calls int
}

func (f *fakeRefresher) Refresh(context.Context) model.Snapshot {
	f.calls++
	return f.snap
}

func testSnapshot() model.Snapshot {
	return model.Snapshot{
		Host:       model.HostInfo{OSName: "Linux", HostName: "myhost"},
		CPUPercent: 25,
		CPURaw:     25,
		Memory:     model.MemoryStat{UsedBytes: 2 << 30, TotalBytes: 8 << 30},
		Disks: []model.DiskStat{
			{MountOrDevice: "/", TotalBytes: 100 << 30, FreeBytes: 50 << 30},
		},
		Processes: []model.ProcessStat{
			{PID: 1, Name: "test", CPUPercent: 10, MemoryBytes: 50 << 20},
			{PID: 77, Name: "a-process-with-a-really-long-name", CPUPercent: 5},
		},
		Networks: []model.NetworkStat{
			{InterfaceName: "lo", BytesTransmitted: 1024, BytesReceived: 2048},
			{InterfaceName: "eth0", BytesTransmitted: 5 << 20, BytesReceived: 7 << 20},
			{InterfaceName: "wlan0"},
		},
		ProcessCount:  42,
		UptimeSeconds: 3600,
	}
}

func TestInitRunsRefresh(t *testing.T) {
	src := &fakeRefresher{snap: testSnapshot()}
	m := NewModel(context.Background(), src)

	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	sm, ok := msg.(snapshotMsg)
	require.True(t, ok)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, "myhost", sm.snapshot.Host.HostName)
}

func TestSnapshotSchedulesNextTick(t *testing.T) {
	src := &fakeRefresher{snap: testSnapshot()}
	m := NewModel(context.Background(), src)

	updated, cmd := m.Update(snapshotMsg{snapshot: src.snap})
	um := updated.(Model)
	require.NotNil(t, um.snapshot)
	assert.False(t, um.refreshing)
	assert.NotNil(t, cmd)
}

func TestTickSkippedWhileRefreshing(t *testing.T) {
	src := &fakeRefresher{snap: testSnapshot()}
	m := NewModel(context.Background(), src)
	require.True(t, m.refreshing)

	_, cmd := m.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd)

	m.refreshing = false
	updated, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.True(t, updated.(Model).refreshing)

	_, ok := cmd().(snapshotMsg)
	assert.True(t, ok)
}

func TestQuitCancelsContext(t *testing.T) {
	m := NewModel(context.Background(), &fakeRefresher{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Error(t, m.ctx.Err())

	// no further ticks after shutdown
	_, cmd = m.Update(snapshotMsg{})
	assert.Nil(t, cmd)
}

func TestWindowSize(t *testing.T) {
	m := NewModel(context.Background(), &fakeRefresher{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	um := updated.(Model)

	left, right := um.columnWidths()
	assert.Equal(t, 72, left)
	assert.Equal(t, 48, right)
}

func TestViewBeforeFirstSnapshot(t *testing.T) {
	m := NewModel(context.Background(), &fakeRefresher{})
	assert.Contains(t, m.View(), "Sampling")
}

func TestViewRendersSnapshot(t *testing.T) {
	m := NewModel(context.Background(), &fakeRefresher{})
	snap := testSnapshot()
	m.snapshot = &snap
	m.width = 140

	out := m.View()
	assert.Contains(t, out, dashboardTitle)
	assert.Contains(t, out, "myhost")
	assert.Contains(t, out, "Linux")
	assert.Contains(t, out, "1h 0m 0s")
	assert.Contains(t, out, "test")
	assert.Contains(t, out, "50.0")
	assert.Contains(t, out, "a-process-with-a-really-l")
	assert.NotContains(t, out, "a-process-with-a-really-lo")
	assert.Contains(t, out, "eth0")
	assert.NotContains(t, out, "wlan0")
	assert.Contains(t, out, " 25%")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "Press q or Ctrl+C to exit.")
}

func TestViewToleratesEmptySnapshot(t *testing.T) {
	m := NewModel(context.Background(), &fakeRefresher{})
	m.snapshot = &model.Snapshot{}

	out := m.View()
	assert.Contains(t, out, "No disks found")
	assert.Contains(t, out, "No processes")
	assert.Contains(t, out, "No interfaces found")
	assert.Contains(t, out, "  0%")
}
