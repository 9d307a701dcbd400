package commands

import (
	"errors"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand reports a driver's position. When orderID is
// set the position is also broadcast to that order's room.
type UpdateDriverLocationCommand struct {
	driverUserID kernel.UUID
	location     kernel.Location
	orderID      *kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateDriverLocationCommand(
	driverUserID kernel.UUID,
	latitude, longitude float64,
	orderID *kernel.UUID,
) (UpdateDriverLocationCommand, error) {
	location, locationErr := kernel.NewLocation(latitude, longitude)

	var orderErr error
	if orderID != nil {
		orderErr = orderID.Validate()
	}

	if err := errors.Join(driverUserID.Validate(), locationErr, orderErr); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return UpdateDriverLocationCommand{
		driverUserID: driverUserID,
		location:     location,
		orderID:      orderID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

func (c UpdateDriverLocationCommand) DriverUserID() kernel.UUID {
	return c.driverUserID
}

func (c UpdateDriverLocationCommand) Location() kernel.Location {
	return c.location
}

func (c UpdateDriverLocationCommand) OrderID() *kernel.UUID {
	return c.orderID
}
