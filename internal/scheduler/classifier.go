package scheduler

import (
	"time"

	"github.com/vindursweden/kalender/internal/domain"
)

// ClassifyDay maps a calendar date to its day type. Resolution order,
// first match wins:
//
//  1. explicit per-date override
//  2. break/holiday date range
//  3. special-day list
//  4. weekday lookup
//
// Total: unmatched weekdays classify as DayOff. Pure function of its
// inputs; time-of-day is ignored.
func ClassifyDay(date time.Time, rules domain.RuleSet) domain.DayType {
	if t, ok := rules.DateOverrides[domain.DateKey(date)]; ok {
		return t
	}

	for _, br := range rules.Breaks {
		if br.Contains(date) {
			if br.Type != "" {
				return br.Type
			}
			return domain.DayOff
		}
	}

	day := domain.DateOnly(date)
	for _, sd := range rules.SpecialDates {
		if domain.DateOnly(sd).Equal(day) {
			return domain.DaySpecial
		}
	}

	if t, ok := rules.WeekdayTypes[date.Weekday()]; ok {
		return t
	}
	return domain.DayOff
}
