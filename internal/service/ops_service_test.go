package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
	"github.com/vindursweden/kalender/internal/repository"
	"github.com/vindursweden/kalender/internal/testutil"
)

func newOpsFixture(t *testing.T) (OpsService, PlanService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	manual := repository.NewSQLiteManualEventRepo(database)
	overrides := repository.NewSQLiteOverrideRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	plans := NewPlanService(testHousehold(), manual, overrides, completions)
	return NewOpsService(plans, manual, overrides), plans
}

func intPtr(n int) *int { return &n }

func TestOpsService_CreateManualEvent(t *testing.T) {
	svc, plans := newOpsFixture(t)
	ctx := context.Background()

	result, err := svc.Apply(ctx, contract.CalendarOp{
		Kind:        contract.OpCreate,
		PersonID:    "max",
		Title:       "Simskola",
		Date:        "2026-09-07",
		Start:       "16:00",
		DurationMin: intPtr(45),
	}, at("08:00"))
	require.NoError(t, err)
	require.NotEmpty(t, result.EventID)
	assert.False(t, result.Overridden)

	plan, err := plans.Day(ctx, contract.DayPlanRequest{Date: monday, Now: at("08:00")})
	require.NoError(t, err)

	created := findPlanEvent(plan.Events, result.EventID)
	require.NotNil(t, created)
	assert.Equal(t, "Simskola", created.Title)
	assert.True(t, created.Start.Equal(at("16:00")))
	assert.True(t, created.End.Equal(at("16:45")))
}

func TestOpsService_CreateMissingFields(t *testing.T) {
	svc, _ := newOpsFixture(t)

	_, err := svc.Apply(context.Background(), contract.CalendarOp{
		Kind:  contract.OpCreate,
		Title: "Utan person",
		Date:  "2026-09-07",
		Start: "16:00",
	}, at("08:00"))

	var opErr *contract.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, contract.OpErrInvalidFields, opErr.Code)
}

func TestOpsService_ModifyManualEvent(t *testing.T) {
	svc, plans := newOpsFixture(t)
	ctx := context.Background()

	created, err := svc.Apply(ctx, contract.CalendarOp{
		Kind:     contract.OpCreate,
		PersonID: "max",
		Title:    "Simskola",
		Date:     "2026-09-07",
		Start:    "16:00",
	}, at("08:00"))
	require.NoError(t, err)

	result, err := svc.Apply(ctx, contract.CalendarOp{
		Kind:        contract.OpModify,
		EventID:     created.EventID,
		Start:       "17:00",
		Date:        "2026-09-07",
		DurationMin: intPtr(30),
	}, at("08:00"))
	require.NoError(t, err)
	assert.False(t, result.Overridden, "manual events are updated in place")

	plan, err := plans.Day(ctx, contract.DayPlanRequest{Date: monday, Now: at("08:00")})
	require.NoError(t, err)
	got := findPlanEvent(plan.Events, created.EventID)
	require.NotNil(t, got)
	assert.True(t, got.Start.Equal(at("17:00")))
	assert.True(t, got.End.Equal(at("17:30")))
}

func TestOpsService_ModifyTemplateEventLandsAsOverride(t *testing.T) {
	svc, plans := newOpsFixture(t)
	ctx := context.Background()

	result, err := svc.Apply(ctx, contract.CalendarOp{
		Kind:    contract.OpModify,
		EventID: "leia:frukost:2026-09-07",
		Start:   "07:20",
	}, at("07:00"))
	require.NoError(t, err)
	assert.True(t, result.Overridden)

	plan, err := plans.Day(ctx, contract.DayPlanRequest{Date: monday, Now: at("07:00")})
	require.NoError(t, err)
	frukost := findPlanEvent(plan.Events, "leia:frukost:2026-09-07")
	require.NotNil(t, frukost)
	assert.True(t, frukost.Start.Equal(at("07:20")))
	assert.True(t, frukost.End.Equal(at("07:30")), "shift keeps planned duration")
}

func TestOpsService_ModifyUnknownEvent(t *testing.T) {
	svc, _ := newOpsFixture(t)

	_, err := svc.Apply(context.Background(), contract.CalendarOp{
		Kind:    contract.OpModify,
		EventID: "leia:finnsinte:2026-09-07",
		Start:   "08:00",
	}, at("07:00"))

	var opErr *contract.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, contract.OpErrUnknownEvent, opErr.Code)
}

func TestOpsService_DeleteManualEvent(t *testing.T) {
	svc, plans := newOpsFixture(t)
	ctx := context.Background()

	created, err := svc.Apply(ctx, contract.CalendarOp{
		Kind:     contract.OpCreate,
		PersonID: "max",
		Title:    "Kalas",
		Date:     "2026-09-07",
		Start:    "14:00",
	}, at("08:00"))
	require.NoError(t, err)

	_, err = svc.Apply(ctx, contract.CalendarOp{
		Kind:    contract.OpDelete,
		EventID: created.EventID,
		Date:    "2026-09-07",
	}, at("08:00"))
	require.NoError(t, err)

	plan, err := plans.Day(ctx, contract.DayPlanRequest{Date: monday, Now: at("08:00")})
	require.NoError(t, err)
	assert.Nil(t, findPlanEvent(plan.Events, created.EventID))
}

func TestOpsService_DeleteTemplateEventRejected(t *testing.T) {
	svc, _ := newOpsFixture(t)

	_, err := svc.Apply(context.Background(), contract.CalendarOp{
		Kind:    contract.OpDelete,
		EventID: "leia:skola:2026-09-07",
	}, at("07:00"))

	var opErr *contract.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, contract.OpErrNotDeletable, opErr.Code)
}

func TestOpsService_UnknownKind(t *testing.T) {
	svc, _ := newOpsFixture(t)

	_, err := svc.Apply(context.Background(), contract.CalendarOp{Kind: "flytta"}, at("07:00"))

	var opErr *contract.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, contract.OpErrUnknownKind, opErr.Code)
}

func TestOpsService_ImportEvents(t *testing.T) {
	svc, plans := newOpsFixture(t)
	ctx := context.Background()

	err := svc.ImportEvents(ctx, []domain.Event{
		{
			ID:         "import-1",
			PersonID:   "max",
			Title:      "Tandläkare",
			Start:      at("15:00"),
			End:        at("16:00"),
			FixedStart: true,
		},
	})
	require.NoError(t, err)

	plan, err := plans.Day(ctx, contract.DayPlanRequest{Date: monday, Now: at("08:00")})
	require.NoError(t, err)
	got := findPlanEvent(plan.Events, "import-1")
	require.NotNil(t, got)
	assert.Equal(t, domain.OriginManual, got.Origin)
	assert.True(t, got.FixedStart, "imported appointments keep their time")
}

func TestOpsService_ImportEventsRejectsIncomplete(t *testing.T) {
	svc, _ := newOpsFixture(t)

	err := svc.ImportEvents(context.Background(), []domain.Event{
		{ID: "import-1", PersonID: "max", Title: "Baklänges", Start: at("16:00"), End: at("15:00")},
	})

	var opErr *contract.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, contract.OpErrInvalidFields, opErr.Code)
}

// Guard: events created through ops keep the manual origin so replanning
// treats them as real activities.
func TestOpsService_CreatedEventIsNotSynthetic(t *testing.T) {
	svc, plans := newOpsFixture(t)
	ctx := context.Background()

	created, err := svc.Apply(ctx, contract.CalendarOp{
		Kind:     contract.OpCreate,
		PersonID: "leia",
		Title:    "Läxor",
		Date:     "2026-09-07",
		Start:    "17:00",
	}, at("08:00"))
	require.NoError(t, err)

	plan, err := plans.Day(ctx, contract.DayPlanRequest{Date: monday, Now: at("08:00")})
	require.NoError(t, err)
	got := findPlanEvent(plan.Events, created.EventID)
	require.NotNil(t, got)
	assert.Equal(t, domain.OriginManual, got.Origin)
	assert.False(t, got.Synthetic())
}
