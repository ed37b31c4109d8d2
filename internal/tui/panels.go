package tui

import (
	"fmt"
	"strings"

	"github.com/rusenback/hostmon/internal/tui/views"
)

// renderSystemPanel renders host info, CPU and memory
func (m Model) renderSystemPanel(width int) string {
	snap := m.snapshot
	var s strings.Builder

	s.WriteString(fmt.Sprintf(" Host: %s | OS: %s\n",
		valueStyle.Render(snap.Host.HostName),
		valueStyle.Render(snap.Host.OSName)))
	s.WriteString(fmt.Sprintf(" Proc: %s | Up: %s\n\n",
		countStyle.Render(fmt.Sprintf("%d", snap.ProcessCount)),
		valueStyle.Render(views.FormatUptime(snap.UptimeSeconds))))

	bw := barWidth(width)
	s.WriteString(views.RenderBar("CPU", snap.CPURaw, bw) + "\n")
	s.WriteString(views.RenderBar("MEM", snap.Memory.PercentUsed(), bw) + "\n")
	s.WriteString(detailStyle.Render(fmt.Sprintf("          %s / %s",
		views.FormatBytes(snap.Memory.UsedBytes),
		views.FormatBytes(snap.Memory.TotalBytes))))

	return panelStyle.Width(width - 2).Render(s.String())
}

// renderNetworkPanel renders the first interfaces' cumulative counters
func (m Model) renderNetworkPanel(width int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("NETWORK ACTIVITY") + "\n\n")

	networks := m.snapshot.Networks
	if len(networks) == 0 {
		s.WriteString(" No interfaces found")
	}
	if len(networks) > maxNetworks {
		networks = networks[:maxNetworks]
	}
	for _, n := range networks {
		s.WriteString(fmt.Sprintf(" %-10s\n   TX: %-12s RX: %-12s\n",
			views.Truncate(n.InterfaceName, 10),
			views.FormatBytes(n.BytesTransmitted),
			views.FormatBytes(n.BytesReceived)))
	}

	return panelStyle.Width(width - 2).Render(strings.TrimRight(s.String(), "\n"))
}

// renderDiskPanel renders one bar per volume
func (m Model) renderDiskPanel(width int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("DISKS") + "\n\n")

	disks := m.snapshot.Disks
	if len(disks) == 0 {
		s.WriteString(" No disks found")
	}

	bw := barWidth(width)
	for _, d := range disks {
		s.WriteString(" " + views.Truncate(d.MountOrDevice, innerWidth(width)-1) + "\n")
		s.WriteString(views.RenderBar("DSK", d.PercentUsed(), bw) + "\n")
		s.WriteString(detailStyle.Render(fmt.Sprintf("          %s / %s",
			views.FormatBytes(d.UsedBytes()),
			views.FormatBytes(d.TotalBytes))) + "\n")
	}

	return panelStyle.Width(width - 2).Render(strings.TrimRight(s.String(), "\n"))
}

// renderProcessPanel renders the top processes table
func (m Model) renderProcessPanel(width int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("TOP PROCESSES (CPU)") + "\n\n")

	header := fmt.Sprintf("%-8s %-*s %-7s %-9s", "PID", nameWidth, "NAME", "CPU %", "MEM (MB)")
	s.WriteString(headerStyle.Render(header) + "\n")

	if len(m.snapshot.Processes) == 0 {
		s.WriteString(" No processes")
	}

	for _, p := range m.snapshot.Processes {
		row := fmt.Sprintf("%-8d %-*s %-7.1f %-9s",
			p.PID,
			nameWidth, views.Truncate(p.Name, nameWidth),
			p.CPUPercent,
			views.FormatMB(p.MemoryBytes))
		s.WriteString(rowStyle.Render(row) + "\n")
	}

	return panelStyle.Width(width - 2).Render(strings.TrimRight(s.String(), "\n"))
}
