package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

// defaultLastDuration ends a person's final event of the day when the
// step declares neither a best nor a minimum duration.
const defaultLastDuration = 10 * time.Minute

// Expansion is the output of expanding one date.
type Expansion struct {
	Date         time.Time
	DayType      domain.DayType
	TomorrowType domain.DayType
	Events       []domain.Event
	Warnings     []contract.Warning
}

// ExpandDay turns the day profile selected for date into concrete events.
// Expansion is deterministic and idempotent: event IDs derive from
// person+step key+date, ordering ties break on person then step key.
//
// Tomorrow's day type is resolved too, because evening-cluster steps pick
// their clock time from it (e.g. earlier bedtime before a school day).
func ExpandDay(date time.Time, rules domain.RuleSet, profiles map[domain.DayType]domain.DayProfile) (*Expansion, error) {
	dayType := ClassifyDay(date, rules)
	tomorrowType := ClassifyDay(domain.DateOnly(date).AddDate(0, 0, 1), rules)

	profile, ok := profiles[dayType]
	if !ok {
		return nil, &contract.ConfigError{
			Code:    contract.ConfigErrMissingProfile,
			Message: fmt.Sprintf("no day profile configured for type %q", dayType),
		}
	}

	exp := &Expansion{
		Date:         domain.DateOnly(date),
		DayType:      dayType,
		TomorrowType: tomorrowType,
	}

	// Resolve each step's absolute start. Offset steps chain off the same
	// person's previous step, so resolution follows profile order.
	lastByPerson := make(map[string]time.Time)
	events := make([]domain.Event, 0, len(profile.Steps))
	for _, step := range profile.Steps {
		start, err := resolveStepStart(step, exp.Date, tomorrowType, lastByPerson)
		if err != nil {
			return nil, err
		}
		lastByPerson[step.PersonID] = start

		events = append(events, domain.Event{
			ID:           domain.EventID(step.PersonID, step.Key, exp.Date),
			PersonID:     step.PersonID,
			Title:        step.Title,
			Start:        start,
			MinDuration:  domain.MinutesPtr(step.MinDurationMin),
			BestDuration: domain.MinutesPtr(step.BestDurationMin),
			FixedStart:   step.FixedStart,
			Involved:     append([]domain.Participant(nil), step.Involved...),
			Resource:     step.Resource,
			Cluster:      step.Cluster,
			Origin:       domain.OriginTemplate,
			TemplateKey:  step.Key,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if a.PersonID != b.PersonID {
			return a.PersonID < b.PersonID
		}
		return a.TemplateKey < b.TemplateKey
	})

	assignEnds(events)
	exp.Warnings = resolveDependencies(events, profile.Steps, exp.Date)
	exp.Events = events
	return exp, nil
}

// resolveStepStart picks the step's absolute start: evening-cluster table
// keyed by tomorrow's type, then explicit clock, then offset from the
// same person's previous step. A step with none of these is a
// configuration error and stops expansion.
func resolveStepStart(step domain.TemplateStep, date time.Time, tomorrow domain.DayType, lastByPerson map[string]time.Time) (time.Time, error) {
	clock := step.At
	if len(step.EveningAt) > 0 {
		if at, ok := step.EveningAt[tomorrow]; ok {
			clock = at
		}
	}

	if clock != "" {
		since, err := domain.ParseClock(clock)
		if err != nil {
			return time.Time{}, &contract.ConfigError{
				Code:    contract.ConfigErrBadClock,
				Message: fmt.Sprintf("step %q: %v", step.Key, err),
			}
		}
		return domain.At(date, since), nil
	}

	if step.OffsetMin != nil {
		prev, ok := lastByPerson[step.PersonID]
		if !ok {
			return time.Time{}, &contract.ConfigError{
				Code:    contract.ConfigErrUnresolvedTime,
				Message: fmt.Sprintf("step %q: offset requires an earlier step for person %q", step.Key, step.PersonID),
			}
		}
		return prev.Add(time.Duration(*step.OffsetMin) * time.Minute), nil
	}

	return time.Time{}, &contract.ConfigError{
		Code:    contract.ConfigErrUnresolvedTime,
		Message: fmt.Sprintf("step %q has neither a clock time nor an offset", step.Key),
	}
}

// assignEnds makes each person's day contiguous: an event ends where the
// same person's next event starts. The last event falls back to best,
// then minimum, then a fixed default duration.
func assignEnds(events []domain.Event) {
	nextByPerson := make(map[string]time.Time)
	for i := len(events) - 1; i >= 0; i-- {
		e := &events[i]
		if next, ok := nextByPerson[e.PersonID]; ok {
			e.End = next
		} else {
			e.End = e.Start.Add(domain.DurationFromPtrWithDefault(defaultLastDuration, e.BestDuration, e.MinDuration))
		}
		nextByPerson[e.PersonID] = e.Start
	}
}

// resolveDependencies turns step-level dependsOn keys into concrete event
// ID edges within the batch. A bare key resolves against the same
// person's steps; "person:key" resolves explicitly. Unresolved keys are
// dropped with a warning, never silently.
func resolveDependencies(events []domain.Event, steps []domain.TemplateStep, date time.Time) []contract.Warning {
	byPersonKey := make(map[string]int, len(events))
	for i, e := range events {
		byPersonKey[e.PersonID+":"+e.TemplateKey] = i
	}

	var warnings []contract.Warning
	for i := range events {
		e := &events[i]
		step := findStep(steps, e.PersonID, e.TemplateKey)
		if step == nil {
			continue
		}
		for _, key := range step.DependsOn {
			qualified := key
			if !strings.Contains(key, ":") {
				qualified = e.PersonID + ":" + key
			}
			j, ok := byPersonKey[qualified]
			if !ok || events[j].ID == e.ID {
				warnings = append(warnings, contract.Warning{
					Code:    contract.WarnDanglingDependency,
					Message: fmt.Sprintf("step %q: dependency %q does not resolve on %s", e.TemplateKey, key, domain.DateKey(date)),
					Subject: e.ID,
				})
				continue
			}
			e.DependsOn = append(e.DependsOn, events[j].ID)
		}
	}
	return warnings
}

func findStep(steps []domain.TemplateStep, personID, key string) *domain.TemplateStep {
	for i := range steps {
		if steps[i].PersonID == personID && steps[i].Key == key {
			return &steps[i]
		}
	}
	return nil
}
