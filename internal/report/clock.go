package report

import "fmt"

// FormatClock renders a minute offset as zero-padded HH:MM.
// Hours are not wrapped at 24, so 1500 renders as "25:00".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
