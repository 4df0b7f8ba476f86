package reclaim

import "fmt"

//nolint:gochecknoglobals // Unit scale
var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders bytes with one decimal digit in the largest unit that keeps
// the value below 1024, stopping at GB.
func FormatSize(bytes uint64) string {
	value := float64(bytes)
	unit := 0

	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}
