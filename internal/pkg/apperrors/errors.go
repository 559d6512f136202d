package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Request errors
	ErrMissingParameter = errors.New("missing parameter")
	ErrBadRequest       = errors.New("bad request")

	// Validation errors (caught at the storage layer, not pre-validated)
	ErrValidationFailed = errors.New("validation failed")

	// Storage errors
	ErrPersistence = errors.New("persistence error")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for an unreadable request body
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewMissingParameterError creates a new custom error for an absent request parameter
func NewMissingParameterError(message string) error {
	return &CustomError{
		Err:     ErrMissingParameter,
		Message: message,
	}
}

// NewPersistenceError creates a new custom error for storage-layer faults.
// The message is what the caller sees; the underlying cause is logged, never returned.
func NewPersistenceError(message string) error {
	return &CustomError{
		Err:     ErrPersistence,
		Message: message,
	}
}

// NewValidationError creates a new custom error for schema validation failures
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Message returns the public message carried by err, or fallback when err carries none
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
