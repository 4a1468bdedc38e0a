package scheduler

import (
	"fmt"
	"time"

	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

// WhyBlocked explains why an event cannot start yet, or returns nil when
// nothing blocks it. An event is blocked when a dependency has not been
// completed, or when a required participant is currently inside their own
// real event. Helper participants never block, and synthetic filler is
// never blocked or blocking.
//
// The answer is advisory: a presentation hint, not a gate.
func WhyBlocked(event domain.Event, now time.Time, events []domain.Event, people []domain.Person) *contract.BlockReason {
	if event.Synthetic() {
		return nil
	}

	for _, depID := range event.DependsOn {
		dep := findEvent(events, depID)
		if dep == nil || dep.Completed() {
			continue
		}
		return &contract.BlockReason{
			Code:      contract.BlockDependency,
			Message:   fmt.Sprintf("väntar på %s: %s", personName(people, dep.PersonID), dep.Title),
			BlockedBy: dep.ID,
		}
	}

	for _, part := range event.Involved {
		if part.Role != domain.RoleRequired {
			continue
		}
		if busy := currentEngagement(events, part.PersonID, event.ID, now); busy != nil {
			return &contract.BlockReason{
				Code:      contract.BlockParticipantBusy,
				Message:   fmt.Sprintf("%s är upptagen med %s", personName(people, part.PersonID), busy.Title),
				BlockedBy: busy.ID,
			}
		}
	}

	return nil
}

// currentEngagement finds the real, uncompleted event the person is
// inside at now, excluding the candidate itself.
func currentEngagement(events []domain.Event, personID, excludeID string, now time.Time) *domain.Event {
	for i := range events {
		e := &events[i]
		if e.PersonID != personID || e.ID == excludeID || e.Synthetic() || e.Completed() {
			continue
		}
		if !e.Start.After(now) && e.End.After(now) {
			return e
		}
	}
	return nil
}

func personName(people []domain.Person, id string) string {
	for _, p := range people {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}
