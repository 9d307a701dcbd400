package commands

import (
	"errors"
	"fmt"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/pkg/errs"
	"orderdispatch/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move an order to a target status on behalf
// of an actor. picked_up and delivered are refused: they belong to the
// dispatch commands.
type ChangeOrderStatusCommand struct {
	orderID          kernel.UUID
	target           order.Status
	actor            kernel.Principal
	estimatedMinutes *int
	reason           string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actor kernel.Principal,
	estimatedMinutes *int,
	reason string,
) (ChangeOrderStatusCommand, error) {
	var targetErr error
	switch {
	case target.Validate() != nil:
		targetErr = target.Validate()
	case target == order.PickedUp || target == order.Delivered || target == order.Placed:
		targetErr = errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s cannot be requested directly", target))
	}

	if err := errors.Join(orderID.Validate(), actor.UserID.Validate(), targetErr); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:          orderID,
		target:           target,
		actor:            actor,
		estimatedMinutes: estimatedMinutes,
		reason:           reason,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c ChangeOrderStatusCommand) Actor() kernel.Principal {
	return c.actor
}

func (c ChangeOrderStatusCommand) EstimatedMinutes() *int {
	return c.estimatedMinutes
}

func (c ChangeOrderStatusCommand) Reason() string {
	return c.reason
}
