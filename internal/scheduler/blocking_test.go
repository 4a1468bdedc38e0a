package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

var familj = []domain.Person{
	{ID: "leia", Name: "Leia"},
	{ID: "max", Name: "Max"},
	{ID: "pappa", Name: "Pappa"},
}

func TestWhyBlocked_UnfinishedDependency(t *testing.T) {
	d := date(2026, 9, 7)
	laga := realEvent("pappa", "pappa:laga", at(d, "06:45"), at(d, "07:16"))
	frukost := realEvent("leia", "leia:frukost", at(d, "07:16"), at(d, "07:26"))
	frukost.DependsOn = []string{"pappa:laga"}

	reason := WhyBlocked(frukost, at(d, "07:16"), []domain.Event{laga, frukost}, familj)

	require.NotNil(t, reason)
	assert.Equal(t, contract.BlockDependency, reason.Code)
	assert.Equal(t, "pappa:laga", reason.BlockedBy)
	assert.Contains(t, reason.Message, "Pappa")
}

func TestWhyBlocked_CompletedDependencyUnblocks(t *testing.T) {
	d := date(2026, 9, 7)
	doneAt := at(d, "07:10")
	laga := realEvent("pappa", "pappa:laga", at(d, "06:45"), at(d, "07:16"))
	laga.CompletedAt = &doneAt
	frukost := realEvent("leia", "leia:frukost", at(d, "07:16"), at(d, "07:26"))
	frukost.DependsOn = []string{"pappa:laga"}

	assert.Nil(t, WhyBlocked(frukost, at(d, "07:16"), []domain.Event{laga, frukost}, familj))
}

func TestWhyBlocked_RequiredParticipantBusy(t *testing.T) {
	d := date(2026, 9, 7)
	jobb := realEvent("pappa", "pappa:jobb", at(d, "07:00"), at(d, "08:00"))
	laxa := realEvent("leia", "leia:laxa", at(d, "07:30"), at(d, "08:00"))
	laxa.Involved = []domain.Participant{{PersonID: "pappa", Role: domain.RoleRequired}}

	reason := WhyBlocked(laxa, at(d, "07:30"), []domain.Event{jobb, laxa}, familj)

	require.NotNil(t, reason)
	assert.Equal(t, contract.BlockParticipantBusy, reason.Code)
	assert.Equal(t, "pappa:jobb", reason.BlockedBy)
}

func TestWhyBlocked_HelperNeverBlocks(t *testing.T) {
	d := date(2026, 9, 7)
	jobb := realEvent("pappa", "pappa:jobb", at(d, "07:00"), at(d, "08:00"))
	laxa := realEvent("leia", "leia:laxa", at(d, "07:30"), at(d, "08:00"))
	laxa.Involved = []domain.Participant{{PersonID: "pappa", Role: domain.RoleHelper}}

	assert.Nil(t, WhyBlocked(laxa, at(d, "07:30"), []domain.Event{jobb, laxa}, familj))
}

func TestWhyBlocked_FillerAvailability(t *testing.T) {
	d := date(2026, 9, 7)
	// Pappa's only engagement is synthetic filler: counts as available.
	fill := fillEvent(familj[2], "fill-day", d, domain.DateOnly(d), domain.DateOnly(d).AddDate(0, 0, 1))
	laxa := realEvent("leia", "leia:laxa", at(d, "07:30"), at(d, "08:00"))
	laxa.Involved = []domain.Participant{{PersonID: "pappa", Role: domain.RoleRequired}}

	assert.Nil(t, WhyBlocked(laxa, at(d, "07:30"), []domain.Event{fill, laxa}, familj))
}

func TestWhyBlocked_SyntheticNeverBlocked(t *testing.T) {
	d := date(2026, 9, 7)
	fill := fillEvent(familj[0], "fill-lead", d, domain.DateOnly(d), at(d, "07:00"))
	fill.DependsOn = []string{"anything"}

	assert.Nil(t, WhyBlocked(fill, at(d, "06:00"), []domain.Event{fill}, familj))
}

func TestWhyBlocked_CompletedEngagementDoesNotBlock(t *testing.T) {
	d := date(2026, 9, 7)
	doneAt := at(d, "07:20")
	jobb := realEvent("pappa", "pappa:jobb", at(d, "07:00"), at(d, "08:00"))
	jobb.CompletedAt = &doneAt
	laxa := realEvent("leia", "leia:laxa", at(d, "07:30"), at(d, "08:00"))
	laxa.Involved = []domain.Participant{{PersonID: "pappa", Role: domain.RoleRequired}}

	assert.Nil(t, WhyBlocked(laxa, at(d, "07:30"), []domain.Event{jobb, laxa}, familj))
}

func TestWhyBlocked_DanglingEdgeIgnored(t *testing.T) {
	d := date(2026, 9, 7)
	frukost := realEvent("leia", "leia:frukost", at(d, "07:16"), at(d, "07:26"))
	frukost.DependsOn = []string{"borta:helt"}

	assert.Nil(t, WhyBlocked(frukost, at(d, "07:16"), []domain.Event{frukost}, familj))
}

func TestWhyBlocked_AdvisoryForAnyNow(t *testing.T) {
	d := date(2026, 9, 7)
	jobb := realEvent("pappa", "pappa:jobb", at(d, "07:00"), at(d, "08:00"))
	laxa := realEvent("leia", "leia:laxa", at(d, "07:30"), at(d, "08:00"))
	laxa.Involved = []domain.Participant{{PersonID: "pappa", Role: domain.RoleRequired}}
	events := []domain.Event{jobb, laxa}

	// Before pappa's engagement starts and after it ends: not blocked.
	assert.Nil(t, WhyBlocked(laxa, at(d, "06:00"), events, familj), "before engagement")
	assert.Nil(t, WhyBlocked(laxa, at(d, "08:00"), events, familj), "after engagement")
	assert.NotNil(t, WhyBlocked(laxa, at(d, "07:59"), events, familj), "during engagement")

	assert.NotNil(t, WhyBlocked(laxa, at(d, "07:00"), events, familj), "engagement start is inclusive")
}
