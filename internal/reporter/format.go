package reporter

import "fmt"

// units are binary-scaled: each step is 1024x the previous.
var units = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count in the largest unit that keeps the value
// under 1024. Bytes render as an integer; every larger unit with exactly
// two decimals. Values past TB stay in TB.
//
//	0        → "0 B"
//	1023     → "1023 B"
//	1024     → "1.00 KB"
//	1536     → "1.50 KB"
func FormatSize(size uint64) string {
	scaled := float64(size)
	unit := 0
	for scaled >= 1024 && unit < len(units)-1 {
		scaled /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d B", size)
	}
	return fmt.Sprintf("%.2f %s", scaled, units[unit])
}
