package pgtest

import (
	"testing"
	"time"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

// NewRestaurant builds an open restaurant with a 10.00 minimum.
func NewRestaurant(t testing.TB, name string) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), name, kernel.MustMoney("10.00"))
	require.NoError(t, err)
	return r
}

func NewDriver(t testing.TB, name string) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), name)
	require.NoError(t, err)
	return d
}

// NewPlacedOrder builds a placed order of two items with a 3.50 delivery fee
// for a signed in customer, delivered to coordinates in New York.
func NewPlacedOrder(t testing.TB, restaurantID kernel.UUID) *order.Order {
	t.Helper()

	pizza, err := order.NewItem(kernel.NewUUID(), "Margherita", kernel.MustMoney("12.50"), 2)
	require.NoError(t, err)
	soda, err := order.NewItem(kernel.NewUUID(), "Soda", kernel.MustMoney("2.00"), 1)
	require.NoError(t, err)

	loc, err := kernel.NewLocation(40.7128, -74.006)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("1 Main St", "New York", &loc)
	require.NoError(t, err)

	customerID := kernel.NewUUID()
	fee := kernel.MustMoney("3.50")
	now := time.Now()

	o, err := order.NewOrder(order.PlaceParams{
		ID:              kernel.NewUUID(),
		Number:          order.NewOrderNumber(now),
		RestaurantID:    &restaurantID,
		CustomerID:      &customerID,
		Items:           []order.Item{pizza, soda},
		DeliveryAddress: address,
		DeliveryFee:     &fee,
		Notes:           "ring twice",
	}, now)
	require.NoError(t, err)
	return o
}

// NewGuestOrder builds a placed order of a guest without coordinates.
func NewGuestOrder(t testing.TB, restaurantID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Ramen", kernel.MustMoney("15.00"), 1)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("5 Side St", "Boston", nil)
	require.NoError(t, err)
	guest, err := order.NewGuestInfo("Gina", "gina@example.com", "555-0100")
	require.NoError(t, err)

	now := time.Now()
	o, err := order.NewOrder(order.PlaceParams{
		ID:              kernel.NewUUID(),
		Number:          order.NewOrderNumber(now),
		RestaurantID:    &restaurantID,
		Guest:           &guest,
		Items:           []order.Item{item},
		DeliveryAddress: address,
	}, now)
	require.NoError(t, err)
	return o
}

// Advance moves o through the given statuses.
func Advance(t testing.TB, o *order.Order, statuses ...order.Status) {
	t.Helper()
	for _, s := range statuses {
		require.NoError(t, o.Transition(s, order.TransitionDetails{RestaurantName: "Test Kitchen"}, time.Now()))
	}
}
