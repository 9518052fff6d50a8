package apperrors

import "errors"

// Configuration errors: the requested volumes cannot be satisfied by the
// available value space. These fail fast; retrying cannot help.
var (
	ErrCodeSpaceExhausted = errors.New("code space exhausted")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// Sequencing errors: a generator was handed collections that violate the
// dependency order (e.g. a grade pointing at an unknown registration).
// These indicate a caller bug, not a data-quality condition.
var (
	ErrMissingReference = errors.New("missing reference in input collection")
	ErrEmptyInput       = errors.New("required input collection is empty")
)

// Pipeline errors
var (
	ErrStageFailed   = errors.New("pipeline stage failed")
	ErrTableNotFound = errors.New("table not found")
)

// Dashboard errors
var (
	ErrUnauthorized = errors.New("authentication required")
	ErrTokenInvalid = errors.New("invalid token")
)

// CustomError carries a sentinel error plus human-readable context.
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewConfigError wraps ErrInvalidConfig with a message.
func NewConfigError(message string) error {
	return &CustomError{Err: ErrInvalidConfig, Message: message}
}

// NewSequencingError wraps ErrMissingReference with a message.
func NewSequencingError(message string) error {
	return &CustomError{Err: ErrMissingReference, Message: message}
}
