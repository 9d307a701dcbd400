package ports

import (
	"context"

	"orderdispatch/internal/core/domain/model/kernel"
)

// Room addresses a group of subscribers.
type Room string

// DriversRoom is joined by every driver looking for work.
const DriversRoom Room = "drivers"

// OrderRoom is joined by everyone tracking one order.
func OrderRoom(orderID kernel.UUID) Room {
	return Room("order-" + orderID.String())
}

// RestaurantRoom is joined by a restaurant's dashboard.
func RestaurantRoom(restaurantID kernel.UUID) Room {
	return Room("restaurant-" + restaurantID.String())
}

// Event names a notification kind.
type Event string

const (
	EventNewOrder       Event = "new_order"
	EventOrderUpdate    Event = "order:update"
	EventDriverAssigned Event = "driver_assigned"
	EventDriverLocation Event = "driver_location"
	EventOrderReady     Event = "order_ready"
)

// NotificationPublisher fans events out to the subscribers of a room.
//
// Publish never blocks on slow or absent subscribers and never fails the
// caller: delivery is best effort and failures are logged by the
// implementation. Command handlers call it only after their unit of work
// has committed.
type NotificationPublisher interface {
	Publish(ctx context.Context, room Room, event Event, payload any)
}
