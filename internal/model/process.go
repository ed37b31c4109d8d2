package model

// ProcessStat represents a running process on the host
type ProcessStat struct {
	PID         uint32
	Name        string // full name, truncation is done by the renderer
	CPUPercent  float32
	MemoryBytes uint64
}
