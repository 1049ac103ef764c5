// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the failure kinds the lifecycle service can surface:
//   - ValueIsRequiredError / ValueIsInvalidError: caller input violates a precondition
//   - ObjectNotFoundError: a referenced object does not exist
//   - IllegalStateTransitionError: an operation is disallowed in the current lifecycle state
//   - VersionConflictError: an optimistic-concurrency check failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrVersionConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
//
// Infrastructure failures (store timeouts, connection loss) are deliberately not
// modeled here; they propagate as wrapped driver errors and are never converted
// into one of the kinds above.
package errs
