// internal/model/stats.go
package model

import (
	"math"
	"time"
)

// Snapshot sisältää yhden päivityskierroksen kaikki mittaukset
type Snapshot struct {
	Host HostInfo

	// CPU, clamped to 0-100 for bars. CPURaw keeps the reading as sampled.
	CPUPercent uint64
	CPURaw     float64

	Memory MemoryStat

	Disks     []DiskStat
	Processes []ProcessStat // top-N by CPU, descending
	Networks  []NetworkStat

	ProcessCount  int
	UptimeSeconds uint64

	// Timestamp of when the cycle finished
	Timestamp time.Time
}

// MemoryPercent returns memory usage clamped to 0-100
func (s Snapshot) MemoryPercent() uint64 {
	return Clamp(s.Memory.PercentUsed())
}

// MemoryStat holds physical memory usage in bytes
type MemoryStat struct {
	UsedBytes  uint64
	TotalBytes uint64
}

// PercentUsed returns used/total*100, or 0 when total is unknown.
// A source reporting used > total yields a value above 100.
func (m MemoryStat) PercentUsed() float64 {
	if m.TotalBytes == 0 {
		return 0
	}
	return float64(m.UsedBytes) / float64(m.TotalBytes) * 100.0
}

// Clamp converts a percentage to an integer in [0, 100]. NaN maps to 0.
func Clamp(percent float64) uint64 {
	switch {
	case math.IsNaN(percent), percent <= 0:
		return 0
	case percent >= 100:
		return 100
	default:
		return uint64(percent)
	}
}
