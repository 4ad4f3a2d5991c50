package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the stable machine-readable kind for each error type.
// Callers classify failures with errors.Is against these values.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrConflict          = errors.New("conflict")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrUnavailable       = errors.New("unavailable")
)

// sanitize collapses newlines in formatted values so error messages stay
// single-line for logging.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// wrapping the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is required: %s", e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// wrapping the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %s", e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value fell outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates an error for an out-of-range value.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates an error for an out-of-range value
// wrapping the underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing object.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing object
// wrapping the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("object not found: param is: %s, ID is: %v (cause: %s)",
			e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("object not found: %s", e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError indicates an operation lost to a concurrent or earlier change:
// double-booked parcels, stale missions, demands reviewed twice.
type ConflictError struct {
	ParamName string
	Details   string
	Cause     error
}

// NewConflictError creates an error for a state conflict.
func NewConflictError(paramName, details string) *ConflictError {
	return &ConflictError{ParamName: paramName, Details: details}
}

// NewConflictErrorWithCause creates an error for a state conflict
// wrapping the underlying cause.
func NewConflictErrorWithCause(paramName, details string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Details: details, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("conflict: %s: %s (cause: %s)", e.ParamName, e.Details, e.Cause))
	}
	return sanitize(fmt.Sprintf("conflict: %s: %s", e.ParamName, e.Details))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// AuthorizationError indicates the actor is outside the agency scope of the
// data they attempted to touch.
type AuthorizationError struct {
	ParamName string
	Cause     error
}

// NewAuthorizationError creates an error for an agency-scope violation.
func NewAuthorizationError(paramName string) *AuthorizationError {
	return &AuthorizationError{ParamName: paramName}
}

// NewAuthorizationErrorWithCause creates an error for an agency-scope violation
// wrapping the underlying cause.
func NewAuthorizationErrorWithCause(paramName string, cause error) *AuthorizationError {
	return &AuthorizationError{ParamName: paramName, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("not authorized: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("not authorized: %s", e.ParamName))
}

func (e *AuthorizationError) Unwrap() error {
	return ErrNotAuthorized
}

// UnavailableError indicates the storage layer timed out or was unreachable.
// The underlying storage error is carried as the cause and never shown verbatim
// to external callers.
type UnavailableError struct {
	ParamName string
	Cause     error
}

// NewUnavailableError creates an error for an unreachable dependency.
func NewUnavailableError(paramName string) *UnavailableError {
	return &UnavailableError{ParamName: paramName}
}

// NewUnavailableErrorWithCause creates an error for an unreachable dependency
// wrapping the underlying cause.
func NewUnavailableErrorWithCause(paramName string, cause error) *UnavailableError {
	return &UnavailableError{ParamName: paramName, Cause: cause}
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("unavailable: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("unavailable: %s", e.ParamName))
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}
