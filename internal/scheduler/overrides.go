package scheduler

import "github.com/vindursweden/kalender/internal/domain"

// ApplyOverrides merges the override layer onto freshly expanded events.
// The input slice is never mutated: the effective event is computed as
// base + patch at read time. A start patch shifts the event keeping its
// planned duration; a duration patch re-derives the end.
func ApplyOverrides(events []domain.Event, overrides domain.Overrides) []domain.Event {
	if len(overrides) == 0 {
		return append([]domain.Event(nil), events...)
	}

	out := make([]domain.Event, len(events))
	for i, e := range events {
		patch, ok := overrides[e.ID]
		if !ok {
			out[i] = e
			continue
		}
		planned := e.PlannedDuration()
		if patch.PlannedDuration != nil {
			planned = *patch.PlannedDuration
		}
		if patch.Start != nil {
			e.Start = *patch.Start
		}
		e.End = e.Start.Add(planned)
		out[i] = e
	}
	return out
}

// SetOverride returns a new override map with patch merged in for
// eventID, last write wins per field.
func SetOverride(overrides domain.Overrides, eventID string, patch domain.Override) domain.Overrides {
	if overrides == nil {
		overrides = domain.Overrides{}
	}
	return overrides.Merge(eventID, patch)
}
