package views

import (
	"fmt"
	"unicode/utf8"
)

var byteUnits = []struct {
	size   uint64
	suffix string
}{
	{1 << 30, "GB"},
	{1 << 20, "MB"},
	{1 << 10, "KB"},
}

// FormatBytes formats a byte count with the largest fitting binary unit,
// e.g. "1.50 KB". Counts below 1 KB are printed as "512 B".
func FormatBytes(bytes uint64) string {
	for _, u := range byteUnits {
		if bytes >= u.size {
			return fmt.Sprintf("%.2f %s", float64(bytes)/float64(u.size), u.suffix)
		}
	}
	return fmt.Sprintf("%d B", bytes)
}

// FormatMB formats bytes as megabytes with one decimal
func FormatMB(bytes uint64) string {
	return fmt.Sprintf("%.1f", float64(bytes)/1024/1024)
}

// FormatUptime formats seconds as "1m 30s", "1h 1m 1s" or, from one day
// on, "1d 1h 0m" without seconds.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	default:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}
}

// Truncate cuts s to at most max runes
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
