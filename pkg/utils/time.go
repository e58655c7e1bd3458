package utils

import (
	"fmt"
	"time"
)

// FormatRemaining formats a countdown as a short string, rounding up so the
// last second reads "1s" rather than "0s"
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	if d < time.Minute {
		seconds := int((d + time.Second - 1) / time.Second)
		return fmt.Sprintf("%ds", seconds)
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

// Progress returns elapsed/total clamped to [0, 1]
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
