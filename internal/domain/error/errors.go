package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest        = 4000
	CodeDuplicateRegistration = 4001
	CodeInvalidUpload         = 4002
	CodeInvalidCredentials    = 4010
	CodeUnauthenticated       = 4011
	CodeNotFound              = 4040
	CodePredictionNotFound    = 4041
	CodeUserNotFound          = 4042

	// 5xxx - Server errors
	CodeInternalServer            = 5000
	CodePersistenceFailure        = 5001
	CodeMalformedExternalResponse = 5020
	CodeExternalCallFailure       = 5021
)

// Base error types
var (
	// ErrDuplicateRegistration is returned when the email or display name is already taken
	ErrDuplicateRegistration = errors.New("account already registered")

	// ErrInvalidCredentials is returned when the email/password pair does not match a user
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when a bearer token cannot be resolved to a live user
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrPredictionNotFound is returned when a prediction is absent or owned by another user
	ErrPredictionNotFound = errors.New("prediction not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrMalformedExternalResponse is returned when the classifier output cannot be normalized
	ErrMalformedExternalResponse = errors.New("malformed classification response")

	// ErrExternalCallFailure is returned when the classification call itself fails
	ErrExternalCallFailure = errors.New("classification call failed")

	// ErrPersistenceFailure is returned for unexpected database errors
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidUpload is returned when the uploaded image is missing, empty or too large
	ErrInvalidUpload = errors.New("invalid image upload")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrDuplicateRegistration):
		return CodeDuplicateRegistration
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrPredictionNotFound):
		return CodePredictionNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidUpload):
		return CodeInvalidUpload
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrMalformedExternalResponse):
		return CodeMalformedExternalResponse
	case errors.Is(err, ErrExternalCallFailure):
		return CodeExternalCallFailure
	case errors.Is(err, ErrPersistenceFailure):
		return CodePersistenceFailure
	default:
		return CodeInternalServer
	}
}

// MalformedResponseError is returned when the classifier text is not a JSON object
type MalformedResponseError struct {
	Raw string
	Err error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("classifier returned invalid JSON: %v. Raw output: %s", e.Err, e.Raw)
}

// Unwrap returns the underlying decode error
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedExternalResponse
func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedExternalResponse
}

// LogFields returns a map of fields for structured logging
func (e *MalformedResponseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "malformed_response",
		"raw":        e.Raw,
		"error":      e.Error(),
		"error_code": CodeMalformedExternalResponse,
	}
}

// MissingFieldError is returned when a required field is absent from the classifier JSON
type MissingFieldError struct {
	Field string
	Raw   string
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("classifier response missing key '%s'. Raw output: %s", e.Field, e.Raw)
}

// Is reports whether target is ErrMalformedExternalResponse
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMalformedExternalResponse
}

// LogFields returns a map of fields for structured logging
func (e *MissingFieldError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "missing_field",
		"field":      e.Field,
		"raw":        e.Raw,
		"error_code": CodeMalformedExternalResponse,
	}
}

// TypeMismatchError is returned when a field cannot be coerced to its target type
type TypeMismatchError struct {
	Field  string
	Parsed map[string]any
	Err    error
}

// Error implements the error interface
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("classifier response has wrong type for '%s': %v. Parsed: %v", e.Field, e.Err, e.Parsed)
}

// Unwrap returns the underlying coercion error
func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedExternalResponse
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrMalformedExternalResponse
}

// LogFields returns a map of fields for structured logging
func (e *TypeMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "type_mismatch",
		"field":      e.Field,
		"parsed":     e.Parsed,
		"error":      e.Err.Error(),
		"error_code": CodeMalformedExternalResponse,
	}
}

// ExternalCallError wraps a failure of the classification call
type ExternalCallError struct {
	Provider string
	Err      error
}

// Error implements the error interface
func (e *ExternalCallError) Error() string {
	return fmt.Sprintf("%s classification call failed: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying transport error
func (e *ExternalCallError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrExternalCallFailure
func (e *ExternalCallError) Is(target error) bool {
	return target == ErrExternalCallFailure
}

// NewExternalCallError creates a new classification call error
func NewExternalCallError(provider string, err error) error {
	return &ExternalCallError{Provider: provider, Err: err}
}

// LogFielder is implemented by errors that carry structured log fields
type LogFielder interface {
	LogFields() map[string]any
}

// IsMalformedResponseError checks if the error comes from normalizing classifier output
func IsMalformedResponseError(err error) bool {
	return errors.Is(err, ErrMalformedExternalResponse)
}

// IsExternalCallError checks if the error is a classification call failure
func IsExternalCallError(err error) bool {
	return errors.Is(err, ErrExternalCallFailure)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPredictionNotFound)
}

// IsAuthError checks if the error should be answered with 401
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUnauthenticated)
}
