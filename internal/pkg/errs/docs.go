// Package errs provides standardized error types for the disbursement
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the error kinds the service distinguishes:
//   - ObjectNotFoundError: a referenced provider or order does not exist
//   - ValidationRejectedError: the partner validation endpoint declined or errored
//   - IllegalStateError: an operation is forbidden by the object's current state
//   - ValueIsRequiredError / ValueIsInvalidError: constructor-level validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
//
// The HTTP boundary relies on this classification to map each kind to a
// response status exactly once; nothing in the core produces HTTP-shaped
// values.
package errs
