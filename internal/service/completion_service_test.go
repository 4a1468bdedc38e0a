package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
	"github.com/vindursweden/kalender/internal/repository"
	"github.com/vindursweden/kalender/internal/testutil"
)

func newCompletionFixture(t *testing.T) (CompletionService, PlanService, *repository.SQLiteCompletionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	manual := repository.NewSQLiteManualEventRepo(database)
	overrides := repository.NewSQLiteOverrideRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	plans := NewPlanService(testHousehold(), manual, overrides, completions)
	return NewCompletionService(plans, testutil.NewTestUoW(database)), plans, completions
}

func TestCompletionService_MarkDoneOnTime(t *testing.T) {
	svc, plans, completions := newCompletionFixture(t)
	ctx := context.Background()

	result, err := svc.MarkDone(ctx, "leia:borsta:2026-09-07", at("07:14"))
	require.NoError(t, err)

	assert.Equal(t, domain.ReplanOK, result.Replan.Status)
	assert.Empty(t, result.Replan.Patches, "finishing early triggers no replan")
	assert.Empty(t, result.Warnings)

	stored, err := completions.Completions(ctx, monday)
	require.NoError(t, err)
	assert.Contains(t, stored, "leia:borsta:2026-09-07")

	plan, err := plans.Day(ctx, contract.DayPlanRequest{Date: monday, Now: at("07:15")})
	require.NoError(t, err)
	borsta := findPlanEvent(plan.Events, "leia:borsta:2026-09-07")
	require.NotNil(t, borsta)
	assert.True(t, borsta.Completed())
}

func TestCompletionService_MarkDoneLateCommitsReplan(t *testing.T) {
	svc, plans, _ := newCompletionFixture(t)
	ctx := context.Background()

	// Borsta ends 07:16; finishing at 07:20 overruns by four minutes.
	result, err := svc.MarkDone(ctx, "leia:borsta:2026-09-07", at("07:20"))
	require.NoError(t, err)

	assert.Equal(t, domain.ReplanOK, result.Replan.Status)
	assert.Equal(t, 4*time.Minute, result.Replan.Overrun)
	require.Len(t, result.Replan.Patches, 3)

	plan, err := plans.Day(ctx, contract.DayPlanRequest{Date: monday, Now: at("07:20")})
	require.NoError(t, err)

	frukost := findPlanEvent(plan.Events, "leia:frukost:2026-09-07")
	require.NotNil(t, frukost)
	assert.True(t, frukost.Start.Equal(at("07:20")))
	assert.True(t, frukost.End.Equal(at("07:30")), "frukost keeps its full ten minutes")

	klapasig := findPlanEvent(plan.Events, "leia:klapasig:2026-09-07")
	require.NotNil(t, klapasig)
	assert.True(t, klapasig.Start.Equal(at("07:31")))
	assert.True(t, klapasig.End.Equal(at("07:45")), "compressed to land on the fixed school start")

	skola := findPlanEvent(plan.Events, "leia:skola:2026-09-07")
	require.NotNil(t, skola)
	assert.True(t, skola.Start.Equal(at("07:45")), "fixed starts never move")
}

func TestCompletionService_MarkDoneInsufficientFlexWarns(t *testing.T) {
	svc, _, _ := newCompletionFixture(t)

	// At 07:35 only klapasig's ten minutes of slack remain against a
	// nineteen minute overrun.
	result, err := svc.MarkDone(context.Background(), "leia:borsta:2026-09-07", at("07:35"))
	require.NoError(t, err)

	assert.Equal(t, domain.ReplanInsufficientFlex, result.Replan.Status)
	assert.Equal(t, 9*time.Minute, result.Replan.Missing)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, contract.WarnInsufficientFlex, result.Warnings[0].Code)
}

func TestCompletionService_MarkDoneUnknownEvent(t *testing.T) {
	svc, _, _ := newCompletionFixture(t)

	_, err := svc.MarkDone(context.Background(), "finns:inte:2026-09-07", at("07:00"))
	var replanErr *contract.ReplanError
	require.ErrorAs(t, err, &replanErr)
	assert.Equal(t, contract.ReplanErrEventNotFound, replanErr.Code)
}

func TestCompletionService_MarkDoneRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	manual := repository.NewSQLiteManualEventRepo(database)
	overrides := repository.NewSQLiteOverrideRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	plans := NewPlanService(testHousehold(), manual, overrides, completions)

	injected := errors.New("disk full")
	svc := NewCompletionService(plans, &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected})
	ctx := context.Background()

	_, err := svc.MarkDone(ctx, "leia:borsta:2026-09-07", at("07:20"))
	require.ErrorIs(t, err, injected)

	stored, err := completions.Completions(ctx, monday)
	require.NoError(t, err)
	assert.Empty(t, stored, "completion must roll back with the failed override write")

	ovr, err := overrides.Get(ctx, monday)
	require.NoError(t, err)
	assert.Empty(t, ovr)
}
