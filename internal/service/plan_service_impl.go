package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vindursweden/kalender/internal/config"
	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
	"github.com/vindursweden/kalender/internal/repository"
	"github.com/vindursweden/kalender/internal/scheduler"
)

type planService struct {
	household   config.Household
	manual      repository.ManualEventRepo
	overrides   repository.OverrideRepo
	completions repository.CompletionRepo
}

func NewPlanService(
	household config.Household,
	manual repository.ManualEventRepo,
	overrides repository.OverrideRepo,
	completions repository.CompletionRepo,
) PlanService {
	return &planService{
		household:   household,
		manual:      manual,
		overrides:   overrides,
		completions: completions,
	}
}

func (s *planService) Day(ctx context.Context, req contract.DayPlanRequest) (*contract.DayPlan, error) {
	date := domain.DateOnly(req.Date)

	exp, err := scheduler.ExpandDay(date, s.household.Rules, s.household.Profiles)
	if err != nil {
		return nil, err
	}
	events := exp.Events

	manual, err := s.manual.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading manual events: %w", err)
	}
	events = append(events, manual...)

	overrides, err := s.overrides.Get(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading overrides: %w", err)
	}
	events = scheduler.ApplyOverrides(events, overrides)

	completions, err := s.completions.Completions(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}
	for i := range events {
		if done, ok := completions[events[i].ID]; ok {
			t := done
			events[i].CompletedAt = &t
		}
	}

	if req.Fill {
		for _, person := range s.household.People {
			events = scheduler.SynthesizeDayFill(events, person, req.Now)
		}
	}

	return &contract.DayPlan{
		Date:         date,
		DayType:      exp.DayType,
		TomorrowType: exp.TomorrowType,
		Events:       events,
		Rows:         scheduler.BuildRows(events, s.household.People),
		Warnings:     exp.Warnings,
	}, nil
}

func (s *planService) WhyBlocked(ctx context.Context, date time.Time, eventID string, now time.Time) (*contract.BlockReason, error) {
	plan, err := s.Day(ctx, contract.DayPlanRequest{Date: date, Now: now})
	if err != nil {
		return nil, err
	}

	for _, e := range plan.Events {
		if e.ID == eventID {
			return scheduler.WhyBlocked(e, now, plan.Events, s.household.People), nil
		}
	}
	return nil, &contract.OpError{
		Code:    contract.OpErrUnknownEvent,
		Message: fmt.Sprintf("event %q not found on %s", eventID, domain.DateKey(date)),
	}
}
