package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
	"github.com/vindursweden/kalender/internal/repository"
)

const defaultOpDuration = 60 * time.Minute

type opsService struct {
	plans     PlanService
	manual    repository.ManualEventRepo
	overrides repository.OverrideRepo
}

func NewOpsService(plans PlanService, manual repository.ManualEventRepo, overrides repository.OverrideRepo) OpsService {
	return &opsService{plans: plans, manual: manual, overrides: overrides}
}

// Apply executes one structured calendar operation. Modifications of
// template-expanded events land in the override layer; only manual
// events are ever deleted.
func (s *opsService) Apply(ctx context.Context, op contract.CalendarOp, now time.Time) (*contract.OpResult, error) {
	switch op.Kind {
	case contract.OpCreate:
		return s.create(ctx, op)
	case contract.OpModify:
		return s.modify(ctx, op, now)
	case contract.OpDelete:
		return s.delete(ctx, op, now)
	default:
		return nil, &contract.OpError{
			Code:    contract.OpErrUnknownKind,
			Message: fmt.Sprintf("unknown operation kind %q", op.Kind),
		}
	}
}

func (s *opsService) create(ctx context.Context, op contract.CalendarOp) (*contract.OpResult, error) {
	if op.PersonID == "" || op.Title == "" || op.Date == "" || op.Start == "" {
		return nil, &contract.OpError{
			Code:    contract.OpErrInvalidFields,
			Message: "create requires person, title, date and start",
		}
	}

	start, err := resolveOpStart(op.Date, op.Start)
	if err != nil {
		return nil, err
	}
	duration := defaultOpDuration
	if op.DurationMin != nil {
		duration = time.Duration(*op.DurationMin) * time.Minute
	}

	event := domain.Event{
		ID:       uuid.New().String(),
		PersonID: op.PersonID,
		Title:    op.Title,
		Start:    start,
		End:      start.Add(duration),
		Origin:   domain.OriginManual,
	}
	if err := s.manual.Create(ctx, event); err != nil {
		return nil, err
	}
	return &contract.OpResult{Kind: contract.OpCreate, EventID: event.ID}, nil
}

func (s *opsService) modify(ctx context.Context, op contract.CalendarOp, now time.Time) (*contract.OpResult, error) {
	if op.EventID == "" {
		return nil, &contract.OpError{
			Code:    contract.OpErrInvalidFields,
			Message: "modify requires an event id",
		}
	}

	stored, err := s.manual.GetByID(ctx, op.EventID)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return s.modifyManual(ctx, op, *stored)
	}
	return s.overrideTemplate(ctx, op, now)
}

func (s *opsService) modifyManual(ctx context.Context, op contract.CalendarOp, event domain.Event) (*contract.OpResult, error) {
	duration := event.PlannedDuration()
	if op.DurationMin != nil {
		duration = time.Duration(*op.DurationMin) * time.Minute
	}
	if op.Title != "" {
		event.Title = op.Title
	}
	if op.Date != "" || op.Start != "" {
		start, err := resolveOpStart(
			domain.CoalesceStr(op.Date, domain.DateKey(event.Start)),
			domain.CoalesceStr(op.Start, event.Start.Format("15:04")),
		)
		if err != nil {
			return nil, err
		}
		event.Start = start
	}
	event.End = event.Start.Add(duration)

	if err := s.manual.Update(ctx, event); err != nil {
		return nil, err
	}
	return &contract.OpResult{Kind: contract.OpModify, EventID: event.ID}, nil
}

// overrideTemplate lands a modify of a template-expanded event in the
// override layer. The base plan is never touched, so the change is
// date-scoped and survives re-expansion.
func (s *opsService) overrideTemplate(ctx context.Context, op contract.CalendarOp, now time.Time) (*contract.OpResult, error) {
	date, err := opEventDate(op)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.Day(ctx, contract.DayPlanRequest{Date: date, Now: now})
	if err != nil {
		return nil, err
	}
	target := findPlanEvent(plan.Events, op.EventID)
	if target == nil {
		return nil, &contract.OpError{
			Code:    contract.OpErrUnknownEvent,
			Message: fmt.Sprintf("event %q not found on %s", op.EventID, domain.DateKey(date)),
		}
	}

	var patch domain.Override
	if op.Start != "" {
		start, err := resolveOpStart(domain.DateKey(date), op.Start)
		if err != nil {
			return nil, err
		}
		patch.Start = &start
	}
	if op.DurationMin != nil {
		d := time.Duration(*op.DurationMin) * time.Minute
		patch.PlannedDuration = &d
	}
	if patch.Start == nil && patch.PlannedDuration == nil {
		return nil, &contract.OpError{
			Code:    contract.OpErrInvalidFields,
			Message: "only start and duration of a planned event can be modified",
		}
	}

	if err := s.overrides.Put(ctx, op.EventID, date, patch); err != nil {
		return nil, err
	}
	return &contract.OpResult{Kind: contract.OpModify, EventID: op.EventID, Overridden: true}, nil
}

func (s *opsService) ImportEvents(ctx context.Context, events []domain.Event) error {
	for _, event := range events {
		if event.PersonID == "" || event.Title == "" || !event.End.After(event.Start) {
			return &contract.OpError{
				Code:    contract.OpErrInvalidFields,
				Message: fmt.Sprintf("imported event %q is incomplete", event.ID),
			}
		}
		if event.ID == "" {
			event.ID = uuid.New().String()
		}
		event.Origin = domain.OriginManual
		if err := s.manual.Create(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (s *opsService) delete(ctx context.Context, op contract.CalendarOp, now time.Time) (*contract.OpResult, error) {
	if op.EventID == "" {
		return nil, &contract.OpError{
			Code:    contract.OpErrInvalidFields,
			Message: "delete requires an event id",
		}
	}

	stored, err := s.manual.GetByID(ctx, op.EventID)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		if err := s.manual.Delete(ctx, op.EventID); err != nil {
			return nil, err
		}
		return &contract.OpResult{Kind: contract.OpDelete, EventID: op.EventID}, nil
	}

	date, err := opEventDate(op)
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.Day(ctx, contract.DayPlanRequest{Date: date, Now: now})
	if err != nil {
		return nil, err
	}
	if findPlanEvent(plan.Events, op.EventID) != nil {
		return nil, &contract.OpError{
			Code:    contract.OpErrNotDeletable,
			Message: fmt.Sprintf("event %q comes from a day template; adjust it instead", op.EventID),
		}
	}
	return nil, &contract.OpError{
		Code:    contract.OpErrUnknownEvent,
		Message: fmt.Sprintf("event %q not found", op.EventID),
	}
}

// opEventDate resolves the date an operation targets: the explicit date
// field when present, otherwise the date embedded in a deterministic
// template event ID.
func opEventDate(op contract.CalendarOp) (time.Time, error) {
	key := op.Date
	if key == "" {
		parts := strings.Split(op.EventID, ":")
		key = parts[len(parts)-1]
	}
	date, err := domain.ParseDateKey(key)
	if err != nil {
		return time.Time{}, &contract.OpError{
			Code:    contract.OpErrInvalidFields,
			Message: fmt.Sprintf("cannot resolve a date for event %q", op.EventID),
		}
	}
	return date, nil
}

func resolveOpStart(dateKey, clock string) (time.Time, error) {
	date, err := domain.ParseDateKey(dateKey)
	if err != nil {
		return time.Time{}, &contract.OpError{
			Code:    contract.OpErrInvalidFields,
			Message: fmt.Sprintf("invalid date %q", dateKey),
		}
	}
	since, err := domain.ParseClock(clock)
	if err != nil {
		return time.Time{}, &contract.OpError{
			Code:    contract.OpErrInvalidFields,
			Message: fmt.Sprintf("invalid start %q", clock),
		}
	}
	return domain.At(date, since), nil
}

func findPlanEvent(events []domain.Event, id string) *domain.Event {
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}

