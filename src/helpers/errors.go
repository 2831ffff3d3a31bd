package helpers

import "fmt"

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type DashboardError struct {
	Message string
	Cause   error
}

func (e *DashboardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DashboardError) Unwrap() error {
	return e.Cause
}

// The two failure classes the dashboard distinguishes: transport problems
// and responses that cannot be decoded. Both are logged, never shown to
// the user, and never abort rendering.
type NetworkError struct{ DashboardError }
type DecodeError struct{ DashboardError }

// -----------------------------------------------------------------------------

func NewNetworkError(message string, cause error) *NetworkError {
	return &NetworkError{DashboardError{Message: message, Cause: cause}}
}

// -----------------------------------------------------------------------------

func NewDecodeError(message string, cause error) *DecodeError {
	return &DecodeError{DashboardError{Message: message, Cause: cause}}
}
