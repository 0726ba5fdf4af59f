package provisioning

import "fmt"

// DuplicateUserError indicates the derived username already exists in the
// identity store. Onboarding must fail rather than overwrite.
type DuplicateUserError struct {
	Email    string
	Username string
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("user already exists for %s (username %s)", e.Email, e.Username)
}

// PolicyNotFoundError indicates no group role mapping exists for the
// requested access tier.
type PolicyNotFoundError struct {
	Tier string
}

func (e *PolicyNotFoundError) Error() string {
	return fmt.Sprintf("no policy mapping for access tier %q", e.Tier)
}

// ValidationError represents a request or configuration validation error
// or warning.
type ValidationError struct {
	Field    string // Field that failed validation
	Message  string // Human-readable error message
	Severity string // "error" or "warning"
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ve.Severity, ve.Field, ve.Message)
}

// IsError returns true if this is an error (not a warning).
func (ve ValidationError) IsError() bool {
	return ve.Severity == "error"
}
