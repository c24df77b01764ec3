package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError handles application level errors. StatusCode is the HTTP
// status the transport answers with.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// BadRequest builds a 400 error for invalid client input.
func BadRequest(format string, args ...interface{}) ApplicationError {
	return ApplicationError{
		Message:    fmt.Sprintf(format, args...),
		StatusCode: http.StatusBadRequest,
	}
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	return e.Cause
}

// WithCause returns a copy of the error carrying the underlying failure.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause
	return e
}

// Is matches a sentinel by message and status. A sentinel without a cause
// matches the same error whatever it wraps.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	if e.Message != targetErr.Message || e.StatusCode != targetErr.StatusCode {
		return false
	}

	return targetErr.Cause == nil || e.Cause == targetErr.Cause
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}
