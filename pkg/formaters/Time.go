package formaters

import (
	"fmt"
	"time"
)

// Timestamp renders a millisecond epoch as UTC time plus its age.
func Timestamp(milliseconds int64) string {
	if milliseconds == 0 {
		return "-"
	}

	timestamp := time.UnixMilli(milliseconds).UTC()

	return fmt.Sprintf("%s (%s ago)", timestamp.Format(time.RFC3339), RoundAndFormatDuration(time.Since(timestamp)))
}

func RoundAndFormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		if seconds > 0 {
			return fmt.Sprintf("%dm%ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}

	return fmt.Sprintf("%dd", int(d.Hours())/24)
}
