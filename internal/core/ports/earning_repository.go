package ports

import (
	"context"

	"orderdispatch/internal/core/domain/model/earning"
	"orderdispatch/internal/core/domain/model/kernel"
)

// EarningRepository is the insert-only earnings ledger.
type EarningRepository interface {
	// Add inserts a ledger row. A second row for the same order is an
	// errs.ConflictError.
	Add(ctx context.Context, entry *earning.DriverEarning) error

	// TotalNet sums the net earnings of a driver.
	TotalNet(ctx context.Context, driverID kernel.UUID) (kernel.Money, error)
}
