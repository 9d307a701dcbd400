package ports

import (
	"context"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/restaurant"
)

type RestaurantRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// IncrementTotalOrders bumps the order counter atomically in the store.
	IncrementTotalOrders(ctx context.Context, id kernel.UUID) error
}
