package service

import (
	"context"
	"time"

	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

// PlanService assembles the effective plan for a date: template expansion
// plus manual events, with completions and overrides applied.
type PlanService interface {
	Day(ctx context.Context, req contract.DayPlanRequest) (*contract.DayPlan, error)
	WhyBlocked(ctx context.Context, date time.Time, eventID string, now time.Time) (*contract.BlockReason, error)
}

// CompletionService marks events done and commits the resulting replan.
type CompletionService interface {
	MarkDone(ctx context.Context, eventID string, now time.Time) (*contract.MarkDoneResult, error)
}

// OpsService applies structured calendar operations.
type OpsService interface {
	Apply(ctx context.Context, op contract.CalendarOp, now time.Time) (*contract.OpResult, error)
	// ImportEvents stores externally sourced events as manual events.
	ImportEvents(ctx context.Context, events []domain.Event) error
}
