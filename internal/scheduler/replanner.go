package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

// PreviewReplan computes how finishing eventID at now ripples through the
// rest of that person's day. The remaining flexible events absorb the
// overrun by shrinking in proportion to their slack, never below their
// minimum duration, and everything downstream re-chains contiguously.
// Fixed-start events never move.
//
// Preview-only: no state is mutated. The caller commits the patches via
// the override layer when it accepts them. Because each preview works
// from the current effective event set, repeated replans of the same
// event produce fresh absolute patches, never compounding deltas.
func PreviewReplan(eventID string, now time.Time, events []domain.Event) (*contract.ReplanPreview, error) {
	completed := findEvent(events, eventID)
	if completed == nil {
		return nil, &contract.ReplanError{
			Code:    contract.ReplanErrEventNotFound,
			Message: fmt.Sprintf("event %q not in the effective set", eventID),
		}
	}
	if completed.Synthetic() {
		return nil, &contract.ReplanError{
			Code:    contract.ReplanErrSynthetic,
			Message: fmt.Sprintf("event %q is synthetic filler and cannot be replanned", eventID),
		}
	}

	preview := &contract.ReplanPreview{Status: domain.ReplanOK}

	overrun := now.Sub(completed.End)
	if overrun <= 0 {
		// On time. Nothing to absorb.
		return preview, nil
	}
	preview.Overrun = overrun

	downstream := remainingEvents(events, *completed)

	var flexible []domain.Event
	var slacks []time.Duration
	var totalSlack time.Duration
	for _, e := range downstream {
		if !e.Flexible() || e.Completed() {
			continue
		}
		s := slack(e)
		flexible = append(flexible, e)
		slacks = append(slacks, s)
		totalSlack += s
	}

	if totalSlack < overrun {
		preview.Status = domain.ReplanInsufficientFlex
		preview.Missing = overrun - totalSlack
	}

	shrinks := DistributeProportional(overrun, slacks)
	shrinkByID := make(map[string]time.Duration, len(flexible))
	for i, e := range flexible {
		shrinkByID[e.ID] = shrinks[i]
		preview.Absorbed += shrinks[i]
	}

	// Re-chain: each movable event starts where its predecessor now ends,
	// beginning at the actual completion time. Pre-existing gaps are never
	// closed by pulling an event earlier than planned.
	cursor := now
	for _, e := range downstream {
		if e.Synthetic() {
			continue
		}
		if !e.Flexible() || e.Completed() {
			if e.End.After(cursor) {
				cursor = e.End
			}
			continue
		}

		newStart := cursor
		if e.Start.After(newStart) {
			newStart = e.Start
		}
		newDur := e.PlannedDuration() - shrinkByID[e.ID]
		cursor = newStart.Add(newDur)

		if newStart.Equal(e.Start) && newDur == e.PlannedDuration() {
			continue
		}
		patch := contract.ReplanPatch{EventID: e.ID, NewStart: newStart}
		if newDur != e.PlannedDuration() {
			d := newDur
			patch.NewPlannedDuration = &d
		}
		preview.Patches = append(preview.Patches, patch)
	}

	return preview, nil
}

// slack is how much an event can be compressed: planned minus minimum
// duration. Events without a declared minimum compress at most to half
// their planned duration, bounding the squeeze.
func slack(e domain.Event) time.Duration {
	planned := e.PlannedDuration()
	min := planned / 2
	if e.MinDuration != nil {
		min = *e.MinDuration
	}
	if min > planned {
		return 0
	}
	return planned - min
}

// remainingEvents selects the completed person's same-day events starting
// at or after the completed event's planned end, in start order.
func remainingEvents(events []domain.Event, completed domain.Event) []domain.Event {
	var out []domain.Event
	for _, e := range events {
		if e.ID == completed.ID || e.PersonID != completed.PersonID {
			continue
		}
		if !e.SameDate(completed.Start) {
			continue
		}
		if e.Start.Before(completed.End) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func findEvent(events []domain.Event, id string) *domain.Event {
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}
