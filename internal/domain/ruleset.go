package domain

import "time"

// DateRange is an inclusive calendar range carrying a day type, used for
// school breaks and holidays.
type DateRange struct {
	From time.Time
	To   time.Time
	Type DayType
}

// Contains reports whether the date-only part of t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(DateOnly(r.From)) && !d.After(DateOnly(r.To))
}

// RuleSet drives day classification. Static, slow-changing configuration.
type RuleSet struct {
	// WeekdayTypes maps weekdays to their default day type. Unmapped
	// weekdays classify as DayOff.
	WeekdayTypes map[time.Weekday]DayType

	// Breaks are date-range exceptions (holidays, school breaks).
	Breaks []DateRange

	// DateOverrides are explicit per-date assignments, keyed by DateKey.
	// They outrank every other rule.
	DateOverrides map[string]DayType

	// SpecialDates classify as DaySpecial. Includes dates materialized
	// from recurrence rules at configuration load time.
	SpecialDates []time.Time
}

const dateKeyLayout = "2006-01-02"

// DateKey renders the date-only part of t as "YYYY-MM-DD".
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a "YYYY-MM-DD" string into a UTC midnight time.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse(dateKeyLayout, s)
}

// DateOnly truncates t to UTC midnight of the same calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
