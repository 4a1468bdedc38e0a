package contract

// CalendarOpKind is the kind of structured calendar operation emitted by
// the upstream interpretation layer. The engine consumes already-resolved
// fields; it never interprets natural language.
type CalendarOpKind string

const (
	OpCreate CalendarOpKind = "create"
	OpModify CalendarOpKind = "modify"
	OpDelete CalendarOpKind = "delete"
)

// CalendarOp is one create/modify/delete operation with resolved
// date/time/title fields.
type CalendarOp struct {
	Kind CalendarOpKind

	// EventID targets modify/delete. For template-expanded events, modify
	// lands as an override; delete is rejected.
	EventID string

	PersonID    string
	Title       string
	Date        string // YYYY-MM-DD
	Start       string // HH:MM
	DurationMin *int
}

// OpResult reports what an applied operation produced.
type OpResult struct {
	Kind    CalendarOpKind
	EventID string
	// Overridden is true when a modify landed in the override layer
	// instead of mutating a stored event.
	Overridden bool
}
