package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the action is not allowed in the current state.
var ErrConflict = errors.New("action not allowed in current state")

// ErrConfirmationRequired is returned when a state-changing action was not confirmed by the user.
var ErrConfirmationRequired = errors.New("confirmation required")

// ErrSubmissionInProgress is returned when the same submission is already running for the user.
var ErrSubmissionInProgress = errors.New("submission already in progress")

// ErrLimitExceeded indicates that the backend rejected an amount against the user's remittance limits.
var ErrLimitExceeded = errors.New("remittance limit exceeded")

// ErrLimitUnavailable indicates that limit information could not be loaded.
var ErrLimitUnavailable = errors.New("cannot load limit info")

// ErrBackend wraps failures talking to the remittance backend (network or 5xx).
var ErrBackend = errors.New("backend request failed")

// ValidationError is a validation failure tied to a specific input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrValidation) match field errors.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// BackendError carries the status and message returned by the remittance backend.
type BackendError struct {
	StatusCode int
	Message    string
	// Body is the raw (size-capped) response body.
	Body []byte
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps backend statuses onto the sentinel errors used by handlers.
func (e *BackendError) Unwrap() error {
	switch {
	case e.StatusCode == 404:
		return ErrNotFound
	case e.StatusCode == 409:
		return ErrConflict
	case e.StatusCode == 400 || e.StatusCode == 422:
		return ErrValidation
	default:
		return ErrBackend
	}
}
