// Package ports defines the contracts between the application core and the
// adapters: repositories, the unit of work and the notification publisher.
package ports

import (
	"context"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Writes are conditional on the version the aggregate was loaded with. A
// write that finds a different version returns an errs.ConflictError
// wrapping errs.VersionIsInvalidError and changes nothing. On success the
// aggregate's version is incremented.
type OrderRepository interface {
	// Add persists a newly placed order. A duplicate order number is
	// reported as an errs.ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists any change of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Claim persists an order that was just assigned to a driver. Besides
	// the version, the row must still be ready and have no driver, so of
	// two concurrent claims exactly one succeeds.
	Claim(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when there is no such order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllReadyUnclaimedSince returns ready orders without a driver whose
	// last change is older than cutoff, oldest first.
	GetAllReadyUnclaimedSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
