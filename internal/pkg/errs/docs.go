// Package errs provides standardized error types for the dispatch core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a numeric value is outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is classification
//
// Domain-specific failure kinds (out-of-service-area, already-taken, invalid
// transition, ...) live as sentinels in the packages that raise them; this
// package covers only the generic shapes shared by all of them.
package errs
