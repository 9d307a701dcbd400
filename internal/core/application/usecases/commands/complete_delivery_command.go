package commands

import (
	"errors"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand is the assigned driver marking an order delivered,
// with an optional note and proof photo reference.
type CompleteDeliveryCommand struct {
	driverUserID kernel.UUID
	orderID      kernel.UUID
	note         string
	photo        string

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(driverUserID, orderID kernel.UUID, note, photo string) (CompleteDeliveryCommand, error) {
	if err := errors.Join(driverUserID.Validate(), orderID.Validate()); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		driverUserID: driverUserID,
		orderID:      orderID,
		note:         note,
		photo:        photo,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) DriverUserID() kernel.UUID {
	return c.driverUserID
}

func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteDeliveryCommand) Note() string {
	return c.note
}

func (c CompleteDeliveryCommand) Photo() string {
	return c.photo
}
