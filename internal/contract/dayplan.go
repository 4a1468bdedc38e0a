package contract

import (
	"time"

	"github.com/vindursweden/kalender/internal/domain"
)

// DayPlanRequest asks for the fully rendered plan of one date. Now is
// supplied by the caller (real or simulated clock); the core never reads
// a clock itself.
type DayPlanRequest struct {
	Date time.Time
	Now  time.Time
	// Fill controls synthetic gap filling for grid coverage.
	Fill bool
}

// DayPlan is the effective, override-applied plan for one date.
type DayPlan struct {
	Date         time.Time
	DayType      domain.DayType
	TomorrowType domain.DayType
	Events       []domain.Event
	Rows         []domain.Row
	Warnings     []Warning
}

// BlockReasonCode classifies why an event cannot start yet.
type BlockReasonCode string

const (
	BlockDependency      BlockReasonCode = "DEPENDENCY"
	BlockParticipantBusy BlockReasonCode = "PARTICIPANT_BUSY"
)

// BlockReason is an advisory presentation hint; it never prevents the
// event from being displayed or interacted with.
type BlockReason struct {
	Code    BlockReasonCode
	Message string
	// BlockedBy is the prerequisite event, when known.
	BlockedBy string
}
