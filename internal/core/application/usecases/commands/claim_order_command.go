package commands

import (
	"errors"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand is a driver's request to take a ready order.
type ClaimOrderCommand struct {
	driverUserID kernel.UUID
	orderID      kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimOrderCommand(driverUserID, orderID kernel.UUID) (ClaimOrderCommand, error) {
	if err := errors.Join(driverUserID.Validate(), orderID.Validate()); err != nil {
		return ClaimOrderCommand{}, err
	}

	return ClaimOrderCommand{
		driverUserID: driverUserID,
		orderID:      orderID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

func (c ClaimOrderCommand) DriverUserID() kernel.UUID {
	return c.driverUserID
}

func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
