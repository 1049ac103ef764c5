package errs_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("classified with errors.Is", func(t *testing.T) {
		var err error = errs.NewObjectNotFoundError("orderId", "123")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerId")

		assert.Equal(t, "customerId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("field missing from payload")
		err := errs.NewValueIsRequiredErrorWithCause("customerId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerId (cause: field missing from payload)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("5 is not a valid status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: 5 is not a valid status)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestIllegalStateTransitionError(t *testing.T) {
	t.Run("NewIllegalStateTransitionError", func(t *testing.T) {
		err := errs.NewIllegalStateTransitionError("cancel", "SHIPPED")

		assert.Equal(t, "cancel", err.Operation)
		assert.Equal(t, "SHIPPED", err.CurrentState)
		require.NoError(t, err.Cause)
		assert.Equal(t, "illegal state transition: cancel is not allowed from SHIPPED", err.Error())
		assert.Equal(t, errs.ErrIllegalStateTransition, err.Unwrap())
	})

	t.Run("NewIllegalStateTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("order already promoted")
		err := errs.NewIllegalStateTransitionErrorWithCause("cancel", "IN_FULFILLMENT", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"illegal state transition: cancel is not allowed from IN_FULFILLMENT (cause: order already promoted)",
			err.Error())
	})
}

func TestVersionConflictError(t *testing.T) {
	t.Run("NewVersionConflictError", func(t *testing.T) {
		err := errs.NewVersionConflictError("123", 4)

		assert.Equal(t, "123", err.ID)
		assert.Equal(t, int64(4), err.ExpectedVersion)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version conflict: 123 (expected version: 4)", err.Error())
		assert.Equal(t, errs.ErrVersionConflict, err.Unwrap())
	})

	t.Run("NewVersionConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("row changed")
		err := errs.NewVersionConflictErrorWithCause("123", 4, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version conflict: 123 (expected version: 4) (cause: row changed)", err.Error())
	})

	t.Run("classified with errors.Is", func(t *testing.T) {
		var err error = errs.NewVersionConflictError("123", 1)
		assert.ErrorIs(t, err, errs.ErrVersionConflict)
	})
}
