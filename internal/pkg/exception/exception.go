package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError is an expected, request scoped failure that maps to an
// HTTP status.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

func BadRequest(message string) ApplicationError {
	return ApplicationError{Message: message, StatusCode: http.StatusBadRequest}
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

// Is matches on message and status so a sentinel still matches after
// WithCause attached a cause to it.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Message == targetErr.Message &&
		e.StatusCode == targetErr.StatusCode &&
		(targetErr.Cause == nil || e.Cause == targetErr.Cause)
}

// WithCause returns a copy of e carrying cause.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause
	return e
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// StatusOf reports the status and client message of the first
// ApplicationError in err's chain.
func StatusOf(err error) (int, string, bool) {
	var appErr ApplicationError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, err.Error(), false
	}

	return appErr.StatusCode, appErr.Message, true
}
