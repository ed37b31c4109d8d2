package model

// NetworkStat holds cumulative counters for one interface
type NetworkStat struct {
	InterfaceName    string
	BytesTransmitted uint64 // since interface initialization
	BytesReceived    uint64
}
