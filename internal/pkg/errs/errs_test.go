package errs_test

import (
	"errors"
	"testing"

	"orderdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("driver", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driver, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("non string identifiers are formatted", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("restaurant", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("unknown value"))

		assert.Equal(t, "value is invalid: status (cause: unknown value)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90)

		assert.Equal(t, "value is invalid: 91.5 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("orderId")

	assert.Equal(t, "value is required: orderId", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("order", 3)

	assert.Equal(t, "version is invalid: order, expected version is 3", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestForbiddenError(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		err := errs.NewForbiddenError("deliver order", "order is not assigned to you")

		assert.Equal(t, "forbidden: deliver order (order is not assigned to you)", err.Error())
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("without reason", func(t *testing.T) {
		assert.Equal(t, "forbidden: accept order", errs.NewForbiddenError("accept order", "").Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("plain conflict", func(t *testing.T) {
		err := errs.NewConflictError("order", "already assigned")

		assert.Equal(t, "conflict: order already assigned", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("conflict caused by a lost version race", func(t *testing.T) {
		err := errs.NewConflictErrorWithCause("order", "already assigned", errs.NewVersionIsInvalidError("order", 2))

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

		var versionErr *errs.VersionIsInvalidError
		require.ErrorAs(t, err, &versionErr)
		assert.Equal(t, int64(2), versionErr.Expected)
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), errs.NewObjectNotFoundError("order", "x"))

	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, wrapped, errs.ErrConflict)
}
