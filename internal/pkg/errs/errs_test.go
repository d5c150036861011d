package errs_test

import (
	"errors"
	"testing"

	"laundry/internal/pkg/errs"

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

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("weight")

		assert.Equal(t, "weight", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: weight", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("weight", cause)

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: weight (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("note", errors.New("line one\nline two"))
		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("reason")

		assert.Equal(t, "reason", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: reason", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("reason", cause)

		assert.Equal(t, "reason", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: reason (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestProofIsRequiredError(t *testing.T) {
	t.Run("NewProofIsRequiredError", func(t *testing.T) {
		err := errs.NewProofIsRequiredError("confirm invoice payment")

		assert.Equal(t, "confirm invoice payment", err.Operation)
		require.NoError(t, err.Cause)
		assert.Equal(t, "proof is required: confirm invoice payment", err.Error())
		assert.Equal(t, errs.ErrProofIsRequired, err.Unwrap())
	})

	t.Run("NewProofIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("payment method is not cash")
		err := errs.NewProofIsRequiredErrorWithCause("book rider", cause)

		assert.Equal(t, "book rider", err.Operation)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "proof is required: book rider (cause: payment method is not cash)", err.Error())
		assert.Equal(t, errs.ErrProofIsRequired, err.Unwrap())
	})
}

func TestPersistenceError(t *testing.T) {
	t.Run("NewPersistenceError", func(t *testing.T) {
		cause := errors.New("serialization conflict")
		err := errs.NewPersistenceError("append stage event", cause)

		assert.Equal(t, "append stage event", err.Op)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "persistence failure: append stage event (cause: serialization conflict)", err.Error())
		assert.Equal(t, errs.ErrPersistence, err.Unwrap())
	})

	t.Run("NewPersistenceError without cause", func(t *testing.T) {
		err := errs.NewPersistenceError("commit", nil)

		require.NoError(t, err.Cause)
		assert.Equal(t, "persistence failure: commit", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrProofIsRequired)
		require.Error(t, errs.ErrPersistence)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "proof is required", errs.ErrProofIsRequired.Error())
		assert.Equal(t, "persistence failure", errs.ErrPersistence.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("weight")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueRequiredErr := errs.NewValueIsRequiredError("reason")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		proofRequiredErr := errs.NewProofIsRequiredError("book rider")
		require.ErrorIs(t, proofRequiredErr, errs.ErrProofIsRequired)

		persistenceErr := errs.NewPersistenceError("commit", errors.New("test"))
		require.ErrorIs(t, persistenceErr, errs.ErrPersistence)
	})
}
