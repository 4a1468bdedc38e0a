package domain

// Person is immutable household reference data, defined in configuration.
type Person struct {
	ID    string
	Name  string
	Color string
	Emoji string
}

// Participant links a person to an event or template step with a role.
type Participant struct {
	PersonID string
	Role     ParticipantRole
}
