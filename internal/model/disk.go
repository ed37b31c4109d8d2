package model

// DiskStat represents a mounted volume
type DiskStat struct {
	MountOrDevice string
	TotalBytes    uint64
	FreeBytes     uint64
}

// UsedBytes returns total minus free, or 0 when free exceeds total
func (d DiskStat) UsedBytes() uint64 {
	if d.FreeBytes > d.TotalBytes {
		return 0
	}
	return d.TotalBytes - d.FreeBytes
}

// PercentUsed returns (total-free)/total*100, or 0 for a zero-sized volume
func (d DiskStat) PercentUsed() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return (float64(d.TotalBytes) - float64(d.FreeBytes)) / float64(d.TotalBytes) * 100.0
}
