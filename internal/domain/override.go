package domain

import "time"

// Override is a sparse, date-scoped patch over one expanded event. The
// base event is never mutated; the effective event is base + override,
// merged at read time.
type Override struct {
	Start           *time.Time
	PlannedDuration *time.Duration
}

// Overrides maps event ID to its patch.
type Overrides map[string]Override

// Merge folds patch into the existing override for eventID, last write
// wins per field. The receiver is not modified; a new map is returned.
func (o Overrides) Merge(eventID string, patch Override) Overrides {
	out := make(Overrides, len(o)+1)
	for k, v := range o {
		out[k] = v
	}
	cur := out[eventID]
	if patch.Start != nil {
		cur.Start = patch.Start
	}
	if patch.PlannedDuration != nil {
		cur.PlannedDuration = patch.PlannedDuration
	}
	out[eventID] = cur
	return out
}
