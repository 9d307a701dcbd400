package restaurant_test

import (
	"testing"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/restaurant"
	"orderdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Luigi's", kernel.MustMoney("10.00"))
	require.NoError(t, err)
	return r
}

func TestNewRestaurant(t *testing.T) {
	r := createValidRestaurant(t)

	require.NoError(t, r.Validate())
	assert.True(t, r.IsActive())
	assert.True(t, r.IsOpen())
	assert.Equal(t, 0, r.TotalOrders())

	_, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "", kernel.ZeroMoney)
	require.ErrorIs(t, err, restaurant.ErrNameIsRequired)
}

func TestRestaurant_CheckNewOrder(t *testing.T) {
	t.Run("accepts subtotal at the minimum", func(t *testing.T) {
		r := createValidRestaurant(t)

		require.NoError(t, r.CheckNewOrder(kernel.MustMoney("10.00")))
		require.NoError(t, r.CheckNewOrder(kernel.MustMoney("25.00")))
	})

	t.Run("rejects subtotal below minimum", func(t *testing.T) {
		r := createValidRestaurant(t)

		err := r.CheckNewOrder(kernel.MustMoney("9.99"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "minimum order amount is 10.00")
		assert.Equal(t, 0, r.TotalOrders())
	})

	t.Run("rejects closed restaurant", func(t *testing.T) {
		r := createValidRestaurant(t)
		r.Close()

		require.ErrorIs(t, r.CheckNewOrder(kernel.MustMoney("50.00")), restaurant.ErrNotAcceptingOrders)
	})

	t.Run("rejects inactive restaurant", func(t *testing.T) {
		r := createValidRestaurant(t)
		r.Deactivate()

		require.ErrorIs(t, r.CheckNewOrder(kernel.MustMoney("50.00")), restaurant.ErrNotAcceptingOrders)
	})
}

func TestRestaurant_IsOwnedBy(t *testing.T) {
	owner := kernel.NewUUID()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), owner, "Luigi's", kernel.ZeroMoney)
	require.NoError(t, err)

	assert.True(t, r.IsOwnedBy(owner))
	assert.False(t, r.IsOwnedBy(kernel.NewUUID()))
}
