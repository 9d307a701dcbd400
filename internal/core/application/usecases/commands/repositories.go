// Package commands contains the write operations of the order dispatch core.
// Every handler validates its command, runs the change inside one unit of
// work and publishes notifications only after the commit succeeded.
package commands

import (
	"context"

	"orderdispatch/internal/core/ports"
)

// Unit of work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	EarningRepoFactory interface {
		EarningRepository() ports.EarningRepository
	}

	// DriverUoW is used by commands that only touch drivers.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// RestaurantUoW is used by commands that only touch restaurants.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// PlacementUoW covers order placement: the order insert and the
	// restaurant counter.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// UoW spans every aggregate. Used by status changes and dispatch.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//	...
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		RestaurantRepoFactory
		EarningRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// FactoryFunc adapts a function to any of the unit of work factory
// interfaces above.
//
//	factory := commands.FactoryFunc[commands.UoW](func() commands.UoW {
//	    return pgFactory.Create()
//	})
type FactoryFunc[T any] func() T

func (f FactoryFunc[T]) Create() T {
	return f()
}
