package testutil

import (
	"time"

	"github.com/vindursweden/kalender/internal/domain"
)

// Step options
type StepOption func(*domain.TemplateStep)

func WithAt(clock string) StepOption {
	return func(s *domain.TemplateStep) {
		s.At = clock
	}
}

func WithOffset(minutes int) StepOption {
	return func(s *domain.TemplateStep) {
		s.At = ""
		s.OffsetMin = &minutes
	}
}

func WithDurations(minMin, bestMin int) StepOption {
	return func(s *domain.TemplateStep) {
		s.MinDurationMin = &minMin
		s.BestDurationMin = &bestMin
	}
}

func WithMinDuration(minutes int) StepOption {
	return func(s *domain.TemplateStep) {
		s.MinDurationMin = &minutes
	}
}

func WithFixedStart() StepOption {
	return func(s *domain.TemplateStep) {
		s.FixedStart = true
	}
}

func WithDependsOn(keys ...string) StepOption {
	return func(s *domain.TemplateStep) {
		s.DependsOn = keys
	}
}

func WithEveningAt(tomorrow domain.DayType, clock string) StepOption {
	return func(s *domain.TemplateStep) {
		if s.EveningAt == nil {
			s.EveningAt = make(map[domain.DayType]string)
		}
		s.EveningAt[tomorrow] = clock
	}
}

func WithInvolved(personID string, role domain.ParticipantRole) StepOption {
	return func(s *domain.TemplateStep) {
		s.Involved = append(s.Involved, domain.Participant{PersonID: personID, Role: role})
	}
}

func NewTestStep(key, personID, title string, opts ...StepOption) domain.TemplateStep {
	s := domain.TemplateStep{
		Key:      key,
		PersonID: personID,
		Title:    title,
		At:       "07:00",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Event options
type EventOption func(*domain.Event)

func WithCompletedAt(t time.Time) EventOption {
	return func(e *domain.Event) {
		e.CompletedAt = &t
	}
}

func WithFixedEventStart() EventOption {
	return func(e *domain.Event) {
		e.FixedStart = true
	}
}

func WithOrigin(origin domain.EventOrigin) EventOption {
	return func(e *domain.Event) {
		e.Origin = origin
	}
}

func WithEventMin(d time.Duration) EventOption {
	return func(e *domain.Event) {
		e.MinDuration = &d
	}
}

func NewTestEvent(personID, key string, start, end time.Time, opts ...EventOption) domain.Event {
	e := domain.Event{
		ID:          domain.EventID(personID, key, start),
		PersonID:    personID,
		Title:       key,
		Start:       start,
		End:         end,
		Origin:      domain.OriginTemplate,
		TemplateKey: key,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewSchoolWeekRules returns a rule set with Monday through Friday mapped
// to school days.
func NewSchoolWeekRules() domain.RuleSet {
	return domain.RuleSet{
		WeekdayTypes: map[time.Weekday]domain.DayType{
			time.Monday:    domain.DaySchool,
			time.Tuesday:   domain.DaySchool,
			time.Wednesday: domain.DaySchool,
			time.Thursday:  domain.DaySchool,
			time.Friday:    domain.DaySchool,
		},
	}
}
