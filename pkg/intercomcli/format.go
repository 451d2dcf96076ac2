package intercomcli

import "fmt"

// FormatDuration formats milliseconds to human readable string
func FormatDuration(ms int) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	secs := float64(ms) / 1000
	if secs < 60 {
		return fmt.Sprintf("%.1fs", secs)
	}
	mins := int(secs / 60)
	secs = secs - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

// FormatDB formats a dBFS reading for display, flooring at "-inf" so a
// silent channel doesn't print a large negative number.
func FormatDB(db float64) string {
	if db <= -240 {
		return "-inf"
	}
	return fmt.Sprintf("%+.1f dB", db)
}
