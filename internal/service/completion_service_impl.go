package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/db"
	"github.com/vindursweden/kalender/internal/domain"
	"github.com/vindursweden/kalender/internal/repository"
	"github.com/vindursweden/kalender/internal/scheduler"
)

type completionService struct {
	plans PlanService
	uow   db.UnitOfWork
}

func NewCompletionService(plans PlanService, uow db.UnitOfWork) CompletionService {
	return &completionService{plans: plans, uow: uow}
}

// MarkDone records a completion and commits the replan it triggers. The
// preview is computed against the current effective plan, then the
// completion and the override patches land in one transaction.
func (s *completionService) MarkDone(ctx context.Context, eventID string, now time.Time) (*contract.MarkDoneResult, error) {
	date := domain.DateOnly(now)

	plan, err := s.plans.Day(ctx, contract.DayPlanRequest{Date: date, Now: now})
	if err != nil {
		return nil, err
	}

	preview, err := scheduler.PreviewReplan(eventID, now, plan.Events)
	if err != nil {
		return nil, err
	}

	result := &contract.MarkDoneResult{
		EventID:     eventID,
		CompletedAt: now,
		Replan:      preview,
	}
	if preview.Status == domain.ReplanInsufficientFlex {
		result.Warnings = append(result.Warnings, contract.Warning{
			Code:    contract.WarnInsufficientFlex,
			Message: fmt.Sprintf("%s av förseningen ryms inte i dagens plan", preview.Missing),
			Subject: eventID,
		})
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCompletions := repository.NewSQLiteCompletionRepo(tx)
		txOverrides := repository.NewSQLiteOverrideRepo(tx)

		if err := txCompletions.MarkDone(ctx, eventID, date, now); err != nil {
			return err
		}
		for _, patch := range preview.Patches {
			start := patch.NewStart
			if err := txOverrides.Put(ctx, patch.EventID, date, domain.Override{
				Start:           &start,
				PlannedDuration: patch.NewPlannedDuration,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
