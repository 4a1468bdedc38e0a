package scheduler

import (
	"sort"
	"time"

	"github.com/vindursweden/kalender/internal/domain"
)

// fillTitle is the placeholder shown while nothing is scheduled.
const fillTitle = "Pågår"

// SynthesizeDayFill pads one person's day with synthetic "ongoing" filler
// so the grid always has contiguous coverage: one filler before the first
// real event and one after the last. Interior gaps are left alone.
//
// Fillers carry no dependencies and no minimum duration, and are excluded
// from replanning. The window stretches to include now, so the result is
// self-consistent for any caller-supplied clock value.
func SynthesizeDayFill(events []domain.Event, person domain.Person, now time.Time) []domain.Event {
	date := dayFillDate(events, now)
	dayStart := domain.DateOnly(date)
	dayEnd := dayStart.AddDate(0, 0, 1)
	if now.Before(dayStart) {
		dayStart = now
	}
	if now.After(dayEnd) {
		dayEnd = now
	}

	var own []domain.Event
	for _, e := range events {
		if e.PersonID == person.ID {
			own = append(own, e)
		}
	}
	sort.SliceStable(own, func(i, j int) bool { return own[i].Start.Before(own[j].Start) })

	out := append([]domain.Event(nil), events...)

	if len(own) == 0 {
		return append(out, fillEvent(person, "fill-day", date, dayStart, dayEnd))
	}

	if first := own[0]; dayStart.Before(first.Start) {
		out = append(out, fillEvent(person, "fill-lead", date, dayStart, first.Start))
	}
	if last := own[len(own)-1]; last.End.Before(dayEnd) {
		out = append(out, fillEvent(person, "fill-tail", date, last.End, dayEnd))
	}
	return out
}

func fillEvent(person domain.Person, key string, date, start, end time.Time) domain.Event {
	return domain.Event{
		ID:          domain.EventID(person.ID, key, date),
		PersonID:    person.ID,
		Title:       fillTitle,
		Start:       start,
		End:         end,
		Origin:      domain.OriginFill,
		TemplateKey: key,
	}
}

// dayFillDate anchors the filler IDs on the events' date, falling back to
// now when the person list is empty.
func dayFillDate(events []domain.Event, now time.Time) time.Time {
	if len(events) > 0 {
		return events[0].Start
	}
	return now
}
