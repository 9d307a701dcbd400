package ports

import (
	"context"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Update follows the same optimistic rule as OrderRepository.Update.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error
	Update(ctx context.Context, aggregate *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// UpdateLocation writes only the position columns, unconditionally.
	// Location reports are last-write-wins and must not fail a concurrent
	// claim or delivery.
	UpdateLocation(ctx context.Context, aggregate *driver.Driver) error

	// GetByUserID resolves the driver profile of an authenticated user.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*driver.Driver, error)
}
