package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories returned by it
// are bound to the transaction started by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	// Rollback is a no-op after Commit, so it can always be deferred.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DriverRepository() DriverRepository
	RestaurantRepository() RestaurantRepository
	EarningRepository() EarningRepository
}
