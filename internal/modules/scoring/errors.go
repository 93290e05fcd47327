package scoring

import "fmt"

// ConfigurationError marks a threshold resolution that cannot proceed:
// either no system default exists or more than one employee override covers
// the evaluation date. It is fatal for that computation and never silently
// defaulted past.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// ConsentViolationError is a programming-contract violation at the boundary:
// a caller asked for raw health values on behalf of a viewer role that is not
// entitled to them.
type ConsentViolationError struct {
	Role string
}

func (e *ConsentViolationError) Error() string {
	return fmt.Sprintf("consent violation: role %q is not entitled to raw health values", e.Role)
}
