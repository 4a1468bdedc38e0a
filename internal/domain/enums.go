package domain

type DayType string

const (
	DaySchool  DayType = "school"
	DayOff     DayType = "off"
	DaySpecial DayType = "special"
)

// ValidDayTypes is the canonical set of accepted day type strings.
var ValidDayTypes = map[string]bool{
	"school": true, "off": true, "special": true,
}

type EventOrigin string

const (
	// OriginTemplate marks events produced by template expansion.
	OriginTemplate EventOrigin = "template"
	// OriginFill marks synthetic filler events inserted for grid coverage.
	OriginFill EventOrigin = "fill"
	// OriginManual marks events created directly by a user or an upstream
	// calendar operation.
	OriginManual EventOrigin = "manual"
)

type ParticipantRole string

const (
	// RoleRequired participants must be free for the event to start.
	RoleRequired ParticipantRole = "required"
	// RoleHelper participants assist but never block the event.
	RoleHelper ParticipantRole = "helper"
)

type ReplanStatus string

const (
	ReplanOK               ReplanStatus = "ok"
	ReplanInsufficientFlex ReplanStatus = "insufficient_flex"
)
