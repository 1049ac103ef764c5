package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValueIsRequired is the sentinel error wrapped by ValueIsRequiredError.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid is the sentinel error wrapped by ValueIsInvalidError.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrObjectNotFound is the sentinel error wrapped by ObjectNotFoundError.
	ErrObjectNotFound = errors.New("object not found")

	// ErrIllegalStateTransition is the sentinel error wrapped by IllegalStateTransitionError.
	ErrIllegalStateTransition = errors.New("illegal state transition")

	// ErrVersionConflict is the sentinel error wrapped by VersionConflictError.
	ErrVersionConflict = errors.New("version conflict")
)

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value violates a validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// IllegalStateTransitionError indicates that an operation is structurally
// disallowed given the object's current lifecycle state.
type IllegalStateTransitionError struct {
	Operation    string
	CurrentState string
	Cause        error
}

// NewIllegalStateTransitionError creates an IllegalStateTransitionError for the
// given operation and the state that forbids it.
func NewIllegalStateTransitionError(operation, currentState string) *IllegalStateTransitionError {
	return &IllegalStateTransitionError{Operation: operation, CurrentState: currentState}
}

// NewIllegalStateTransitionErrorWithCause creates an IllegalStateTransitionError
// wrapping an underlying cause.
func NewIllegalStateTransitionErrorWithCause(
	operation, currentState string, cause error,
) *IllegalStateTransitionError {
	return &IllegalStateTransitionError{Operation: operation, CurrentState: currentState, Cause: cause}
}

func (e *IllegalStateTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is not allowed from %s (cause: %s)",
			ErrIllegalStateTransition, e.Operation, e.CurrentState, e.Cause)
	}
	return fmt.Sprintf("%s: %s is not allowed from %s", ErrIllegalStateTransition, e.Operation, e.CurrentState)
}

func (e *IllegalStateTransitionError) Unwrap() error {
	return ErrIllegalStateTransition
}

// VersionConflictError indicates that an optimistic-concurrency check failed:
// the record changed between the read and the conditional write. The caller may
// re-read and retry at its own discretion.
type VersionConflictError struct {
	ID              any
	ExpectedVersion int64
	Cause           error
}

// NewVersionConflictError creates a VersionConflictError for the given object
// identifier and the version the write was conditioned on.
func NewVersionConflictError(id any, expectedVersion int64) *VersionConflictError {
	return &VersionConflictError{ID: id, ExpectedVersion: expectedVersion}
}

// NewVersionConflictErrorWithCause creates a VersionConflictError wrapping an underlying cause.
func NewVersionConflictErrorWithCause(id any, expectedVersion int64, cause error) *VersionConflictError {
	return &VersionConflictError{ID: id, ExpectedVersion: expectedVersion, Cause: cause}
}

func (e *VersionConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (expected version: %d) (cause: %s)",
			ErrVersionConflict, e.ID, e.ExpectedVersion, e.Cause)
	}
	return fmt.Sprintf("%s: %s (expected version: %d)", ErrVersionConflict, e.ID, e.ExpectedVersion)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}
