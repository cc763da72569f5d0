package models

import "fmt"

// FormatDuration renders a minute count as a human label.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0 min"
	}
	hours := minutes / 60
	rest := minutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%d min", rest)
	case rest == 0:
		return fmt.Sprintf("%d h", hours)
	default:
		return fmt.Sprintf("%d h %d min", hours, rest)
	}
}
