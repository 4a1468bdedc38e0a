package domain

import "time"

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// MinutesPtr converts a *int minute count to a *time.Duration.
func MinutesPtr(min *int) *time.Duration {
	if min == nil {
		return nil
	}
	d := time.Duration(*min) * time.Minute
	return &d
}

// DurationFromPtrWithDefault returns the first non-nil duration, or the
// fallback.
func DurationFromPtrWithDefault(fallback time.Duration, ptrs ...*time.Duration) time.Duration {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
