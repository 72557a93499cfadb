// Package errs provides standardized error types for the GraBee backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ObjectNotFoundError: a referenced record is absent
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ValueIsRequiredError: a required value is missing
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Callers classify failures with errors.Is against the sentinels, so the
// HTTP adapter can map domain failures to status codes without inspecting
// message strings.
package errs
