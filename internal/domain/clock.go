package domain

import (
	"fmt"
	"time"
)

// ParseClock parses a "HH:MM" clock string into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q: out of range", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

// At places a clock offset on a calendar date.
func At(date time.Time, sinceMidnight time.Duration) time.Time {
	return DateOnly(date).Add(sinceMidnight)
}
