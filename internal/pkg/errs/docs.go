// Package errs provides standardized error types for the parcel operations
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when an operation loses to a concurrent change
//   - AuthorizationError: For agency-scope violations
//   - UnavailableError: For storage timeouts and unreachable dependencies
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel acts as the stable machine-readable kind callers classify on
// with errors.Is, while the struct message is the human-readable part.
// Internal storage errors travel only as the Cause and are never surfaced
// verbatim to external callers.
package errs
