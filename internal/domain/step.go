package domain

// TemplateStep is one activity in a day profile. Steps are static
// configuration: defined once, never mutated at runtime.
type TemplateStep struct {
	// Key is stable and unique within profile+person. Event IDs are
	// derived from it, which keeps repeated expansion idempotent.
	Key      string
	PersonID string
	Title    string

	// At is the nominal start as a clock string ("07:08"). Empty when the
	// step is offset-based instead.
	At string
	// OffsetMin schedules the step a number of minutes after the same
	// person's previous step. The person's first step must use At.
	OffsetMin *int

	// EveningAt overrides At depending on tomorrow's day type, e.g. an
	// earlier bedtime before a school day.
	EveningAt map[DayType]string

	MinDurationMin  *int
	BestDurationMin *int
	FixedStart      bool

	// DependsOn lists step keys that must complete before this step can
	// start. A bare key refers to the same person's step; "person:key"
	// refers to another person's step in the same profile.
	DependsOn []string

	Involved []Participant
	Resource string
	Cluster  string
}

// DayProfile is the ordered activity template for one day type.
type DayProfile struct {
	Type  DayType
	Steps []TemplateStep
}
