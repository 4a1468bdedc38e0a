package contract

// ConfigErrorCode classifies household configuration failures. These are
// caught at load/validation time; the core is total over validated input.
type ConfigErrorCode string

const (
	ConfigErrUnresolvedTime ConfigErrorCode = "UNRESOLVED_TIME"
	ConfigErrDuplicateStep  ConfigErrorCode = "DUPLICATE_STEP"
	ConfigErrUnknownPerson  ConfigErrorCode = "UNKNOWN_PERSON"
	ConfigErrBadClock       ConfigErrorCode = "BAD_CLOCK"
	ConfigErrBadRange       ConfigErrorCode = "BAD_RANGE"
	ConfigErrBadRule        ConfigErrorCode = "BAD_RULE"
	ConfigErrMissingProfile ConfigErrorCode = "MISSING_PROFILE"
)

type ConfigError struct {
	Code    ConfigErrorCode
	Message string
}

func (e *ConfigError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ReplanErrorCode classifies replan request failures.
type ReplanErrorCode string

const (
	ReplanErrEventNotFound ReplanErrorCode = "EVENT_NOT_FOUND"
	ReplanErrSynthetic     ReplanErrorCode = "SYNTHETIC_EVENT"
)

type ReplanError struct {
	Code    ReplanErrorCode
	Message string
}

func (e *ReplanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// OpErrorCode classifies calendar operation failures.
type OpErrorCode string

const (
	OpErrUnknownKind   OpErrorCode = "UNKNOWN_KIND"
	OpErrUnknownEvent  OpErrorCode = "UNKNOWN_EVENT"
	OpErrNotDeletable  OpErrorCode = "NOT_DELETABLE"
	OpErrInvalidFields OpErrorCode = "INVALID_FIELDS"
)

type OpError struct {
	Code    OpErrorCode
	Message string
}

func (e *OpError) Error() string {
	return string(e.Code) + ": " + e.Message
}
