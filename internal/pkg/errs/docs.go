// Package errs provides standardized error types for the forwarding service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - StateConflictError: For when an aggregate exists but is not in the expected state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Store-level failures (duplicate keys, transient transaction conflicts, exhausted
// retries, overlapping use of one session) are plain sentinels; adapters wrap the
// driver error with them so that callers only ever match on this package.
package errs
