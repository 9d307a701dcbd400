package guard_test

import (
	"errors"
	"testing"

	"orderdispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errClaimNotConstructed := errors.New("claim must be created via newClaim")

	type claim struct {
		orderID string
		guard   guard.ConstructorGuard
	}

	newClaim := func(orderID string) (claim, error) {
		if orderID == "" {
			return claim{}, errors.New("order id is required")
		}
		return claim{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_claim_validates", func(t *testing.T) {
		c, err := newClaim("o-1")

		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errClaimNotConstructed))
	})

	t.Run("literal_claim_fails_validation", func(t *testing.T) {
		c := claim{orderID: "o-1"}

		assert.Equal(t, errClaimNotConstructed, c.guard.Validate(errClaimNotConstructed))
	})
}
