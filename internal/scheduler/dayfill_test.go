package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vindursweden/kalender/internal/domain"
)

var leia = domain.Person{ID: "leia", Name: "Leia", Color: "#d3869b", Emoji: "🦄"}

func at(d time.Time, clock string) time.Time {
	since, err := domain.ParseClock(clock)
	if err != nil {
		panic(err)
	}
	return domain.At(d, since)
}

func realEvent(person, id string, start, end time.Time) domain.Event {
	return domain.Event{
		ID:       id,
		PersonID: person,
		Title:    id,
		Start:    start,
		End:      end,
		Origin:   domain.OriginTemplate,
	}
}

func TestSynthesizeDayFill_LeadingAndTrailing(t *testing.T) {
	d := date(2026, 9, 7)
	events := []domain.Event{
		realEvent("leia", "a", at(d, "07:00"), at(d, "08:00")),
		realEvent("leia", "b", at(d, "08:00"), at(d, "15:00")),
	}

	filled := SynthesizeDayFill(events, leia, at(d, "12:00"))
	require.Len(t, filled, 4)

	lead := eventByID(t, filled, "leia:fill-lead:2026-09-07")
	assert.True(t, lead.Synthetic())
	assert.True(t, lead.Start.Equal(domain.DateOnly(d)))
	assert.True(t, lead.End.Equal(at(d, "07:00")))
	assert.Empty(t, lead.DependsOn)
	assert.Nil(t, lead.MinDuration)

	tail := eventByID(t, filled, "leia:fill-tail:2026-09-07")
	assert.True(t, tail.Start.Equal(at(d, "15:00")))
	assert.True(t, tail.End.Equal(domain.DateOnly(d).AddDate(0, 0, 1)))
}

func TestSynthesizeDayFill_NoInteriorFill(t *testing.T) {
	d := date(2026, 9, 7)
	events := []domain.Event{
		realEvent("leia", "a", at(d, "07:00"), at(d, "08:00")),
		// Gap 08:00-10:00 is interior and stays open.
		realEvent("leia", "b", at(d, "10:00"), at(d, "11:00")),
	}

	filled := SynthesizeDayFill(events, leia, at(d, "09:00"))
	for _, e := range filled {
		if e.Synthetic() {
			assert.NotEqual(t, at(d, "08:00"), e.Start, "interior gap must not be filled")
		}
	}
}

func TestSynthesizeDayFill_EmptyDayGetsFullCoverage(t *testing.T) {
	d := date(2026, 9, 7)

	filled := SynthesizeDayFill(nil, leia, at(d, "09:00"))
	require.Len(t, filled, 1)

	day := filled[0]
	assert.True(t, day.Synthetic())
	assert.Equal(t, "Pågår", day.Title)
	assert.True(t, day.Start.Equal(domain.DateOnly(d)))
	assert.True(t, day.End.Equal(domain.DateOnly(d).AddDate(0, 0, 1)))
}

func TestSynthesizeDayFill_OtherPeopleUntouched(t *testing.T) {
	d := date(2026, 9, 7)
	events := []domain.Event{
		realEvent("max", "m", at(d, "07:00"), at(d, "08:00")),
	}

	filled := SynthesizeDayFill(events, leia, at(d, "09:00"))

	for _, e := range filled {
		if e.Synthetic() {
			assert.Equal(t, "leia", e.PersonID)
		}
	}
}

func TestSynthesizeDayFill_WindowStretchesToNow(t *testing.T) {
	d := date(2026, 9, 7)
	events := []domain.Event{
		realEvent("leia", "a", at(d, "07:00"), at(d, "08:00")),
	}

	// Simulated clock far past midnight: coverage still reaches now.
	lateNow := domain.DateOnly(d).AddDate(0, 0, 1).Add(2 * time.Hour)
	filled := SynthesizeDayFill(events, leia, lateNow)

	tail := eventByID(t, filled, "leia:fill-tail:2026-09-07")
	assert.True(t, tail.End.Equal(lateNow))
}

func TestSynthesizeDayFill_InputUnchanged(t *testing.T) {
	d := date(2026, 9, 7)
	events := []domain.Event{
		realEvent("leia", "a", at(d, "07:00"), at(d, "08:00")),
	}

	_ = SynthesizeDayFill(events, leia, at(d, "09:00"))
	require.Len(t, events, 1, "input slice must not be mutated")
}
