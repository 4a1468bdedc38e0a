package contract

import (
	"time"

	"github.com/vindursweden/kalender/internal/domain"
)

// ReplanPatch is one absolute adjustment to an event, to be merged into
// the override layer. Patches never compound: each replan computes from
// the current effective state.
type ReplanPatch struct {
	EventID  string
	NewStart time.Time
	// NewPlannedDuration is set only when the event was compressed.
	NewPlannedDuration *time.Duration
}

// ReplanPreview is the outcome of a proportional replan. It is
// preview-only: the caller decides whether to commit the patches.
type ReplanPreview struct {
	Status  domain.ReplanStatus
	Patches []ReplanPatch

	// Overrun is how late the completed event finished.
	Overrun time.Duration
	// Absorbed is the total compression applied across flexible events.
	Absorbed time.Duration
	// Missing is the residual overrun that could not be absorbed. Zero
	// unless Status is ReplanInsufficientFlex.
	Missing time.Duration
}

// MarkDoneResult reports a completion together with any committed replan.
type MarkDoneResult struct {
	EventID     string
	CompletedAt time.Time
	Replan      *ReplanPreview
	Warnings    []Warning
}
