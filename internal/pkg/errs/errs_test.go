package errs_test

import (
	"errors"
	"testing"

	"disbursement/internal/pkg/errs"

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
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("feeAmount")

		assert.Equal(t, "feeAmount", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: feeAmount", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("feeAmount", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: feeAmount (cause: must be greater than 0)", err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("multi\nline")
		assert.Contains(t, err.Error(), "multi line")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValidationRejectedError(t *testing.T) {
	t.Run("NewValidationRejectedError", func(t *testing.T) {
		err := errs.NewValidationRejectedError("Insufficient balance")

		assert.Equal(t, "Insufficient balance", err.Detail)
		require.NoError(t, err.Cause)
		assert.Equal(t, "partner validation rejected: Insufficient balance", err.Error())
		assert.Equal(t, errs.ErrValidationRejected, err.Unwrap())
	})

	t.Run("NewValidationRejectedErrorWithCause", func(t *testing.T) {
		cause := errors.New("status 503")
		err := errs.NewValidationRejectedErrorWithCause("Partner validation service error", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"partner validation rejected: Partner validation service error (cause: status 503)",
			err.Error())
	})
}

func TestIllegalStateError(t *testing.T) {
	err := errs.NewIllegalStateError("order cannot be disbursed: current status is SUCCESS, expected NEW")

	assert.Contains(t, err.Error(), "illegal state:")
	assert.Contains(t, err.Error(), "SUCCESS")
	assert.Equal(t, errs.ErrIllegalState, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValidationRejected)
		require.Error(t, errs.ErrIllegalState)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "partner validation rejected", errs.ErrValidationRejected.Error())
		assert.Equal(t, "illegal state", errs.ErrIllegalState.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsInvalidError("feeAmount"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValidationRejectedError("declined"), errs.ErrValidationRejected)
		require.ErrorIs(t, errs.NewIllegalStateError("already disbursed"), errs.ErrIllegalState)
	})
}
