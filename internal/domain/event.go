package domain

import (
	"fmt"
	"time"
)

// Event is a concrete dated activity for one person. Template-expanded
// events keep the invariant end >= start, and each event ends where the
// same person's next event of the day starts.
type Event struct {
	ID       string
	PersonID string
	Title    string

	Start time.Time
	End   time.Time

	MinDuration  *time.Duration
	BestDuration *time.Duration
	FixedStart   bool

	// DependsOn holds prerequisite event IDs, resolved at expansion time
	// from template-level step keys. Edges never span dates.
	DependsOn []string

	Involved []Participant
	Resource string
	Cluster  string

	Origin      EventOrigin
	TemplateKey string
	ImageRef    string

	CompletedAt *time.Time
}

// EventID derives the deterministic identifier for a template-expanded
// event, so re-expanding the same date yields stable IDs.
func EventID(personID, stepKey string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s", personID, stepKey, DateKey(date))
}

// PlannedDuration is the event's current planned length.
func (e Event) PlannedDuration() time.Duration {
	return e.End.Sub(e.Start)
}

// Synthetic reports whether the event is grid filler rather than a real
// activity. Synthetic events are never replanned and never block.
func (e Event) Synthetic() bool {
	return e.Origin == OriginFill
}

// Flexible reports whether replanning may compress or shift the event.
func (e Event) Flexible() bool {
	return !e.FixedStart && !e.Synthetic()
}

// Completed reports whether the event has been marked done.
func (e Event) Completed() bool {
	return e.CompletedAt != nil
}

// SameDate reports whether the event starts on the given calendar date.
func (e Event) SameDate(date time.Time) bool {
	return DateOnly(e.Start).Equal(DateOnly(date))
}
