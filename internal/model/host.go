package model

// HostInfo describes the machine. It is read once at startup.
type HostInfo struct {
	OSName   string
	HostName string
}
