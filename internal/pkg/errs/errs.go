package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the error kinds the service distinguishes.
// Callers classify errors with errors.Is against these values; the
// HTTP boundary maps each kind to a response status exactly once.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValidationRejected = errors.New("partner validation rejected")
	ErrIllegalState       = errors.New("illegal state")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
// ParamName identifies which reference failed to resolve, ID carries the
// identifier that was looked up.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying lookup failure.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying failure.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the underlying validation failure.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValidationRejectedError indicates that a partner's validation endpoint
// declined the request or failed at the transport level. Detail carries the
// message supplied by the partner, or a generic message when absent.
type ValidationRejectedError struct {
	Detail string
	Cause  error
}

// NewValidationRejectedError creates a ValidationRejectedError carrying the
// partner-supplied detail message.
func NewValidationRejectedError(detail string) *ValidationRejectedError {
	return &ValidationRejectedError{Detail: detail}
}

// NewValidationRejectedErrorWithCause creates a ValidationRejectedError
// wrapping the transport-level failure behind it.
func NewValidationRejectedErrorWithCause(detail string, cause error) *ValidationRejectedError {
	return &ValidationRejectedError{Detail: detail, Cause: cause}
}

func (e *ValidationRejectedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValidationRejected, e.Detail, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValidationRejected, e.Detail))
}

func (e *ValidationRejectedError) Unwrap() error {
	return ErrValidationRejected
}

// IllegalStateError indicates that an operation was attempted against an
// object whose current state forbids it. Details names the offending state.
type IllegalStateError struct {
	Details string
}

// NewIllegalStateError creates an IllegalStateError with the given details.
func NewIllegalStateError(details string) *IllegalStateError {
	return &IllegalStateError{Details: details}
}

func (e *IllegalStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrIllegalState, e.Details))
}

func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalState
}
