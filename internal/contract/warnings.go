package contract

// WarningCode classifies non-fatal conditions surfaced alongside results.
type WarningCode string

const (
	// WarnDanglingDependency: a dependsOn key did not resolve within the
	// expansion batch. The edge is dropped, never silently.
	WarnDanglingDependency WarningCode = "DANGLING_DEPENDENCY"
	// WarnInsufficientFlex: a replan could not fully absorb an overrun.
	WarnInsufficientFlex WarningCode = "INSUFFICIENT_FLEX"
)

type Warning struct {
	Code    WarningCode
	Message string
	// Subject identifies the step key or event ID the warning concerns.
	Subject string
}
