package commands

import (
	"errors"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/pkg/errs"
	"orderdispatch/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderParams is the raw input of NewPlaceOrderCommand. Principal is nil
// for guest checkouts.
type PlaceOrderParams struct {
	OrderID         kernel.UUID
	Principal       *kernel.Principal
	RestaurantID    kernel.UUID
	Items           []order.Item
	DeliveryAddress order.DeliveryAddress
	Guest           *order.GuestInfo
	DeliveryFee     *kernel.Money
	Notes           string
}

// PlaceOrderCommand places a new order at a restaurant, either for the
// authenticated customer or for a guest.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(PlaceOrderParams{
//	    OrderID:         kernel.NewUUID(),
//	    Principal:       &principal,
//	    RestaurantID:    restaurantID,
//	    Items:           items,
//	    DeliveryAddress: address,
//	})
type PlaceOrderCommand struct {
	orderID         kernel.UUID
	customerID      *kernel.UUID
	guest           *order.GuestInfo
	restaurantID    kernel.UUID
	items           []order.Item
	deliveryAddress order.DeliveryAddress
	deliveryFee     *kernel.Money
	notes           string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the input. When a principal is present the
// order belongs to that user and guest details are ignored; otherwise guest
// name and email are required.
func NewPlaceOrderCommand(params PlaceOrderParams) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		orderID:         params.OrderID,
		restaurantID:    params.RestaurantID,
		items:           append([]order.Item(nil), params.Items...),
		deliveryAddress: params.DeliveryAddress,
		deliveryFee:     params.DeliveryFee,
		notes:           params.Notes,
		guard:           guard.NewConstructorGuard(),
	}

	var itemsErr, customerErr, addressErr error
	if len(params.Items) == 0 {
		itemsErr = order.ErrItemsAreRequired
	}
	if params.DeliveryAddress.Street == "" {
		addressErr = errs.NewValueIsRequiredError("deliveryAddress")
	}

	switch {
	case params.Principal != nil:
		userID := params.Principal.UserID
		customerErr = userID.Validate()
		cmd.customerID = &userID
	case params.Guest != nil:
		cmd.guest = params.Guest
	default:
		customerErr = order.ErrCustomerIsRequired
	}

	if err := errors.Join(
		params.OrderID.Validate(),
		params.RestaurantID.Validate(),
		itemsErr,
		customerErr,
		addressErr,
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c PlaceOrderCommand) placeParams(number string) order.PlaceParams {
	restaurantID := c.restaurantID
	return order.PlaceParams{
		ID:              c.orderID,
		Number:          number,
		RestaurantID:    &restaurantID,
		CustomerID:      c.customerID,
		Guest:           c.guest,
		Items:           c.items,
		DeliveryAddress: c.deliveryAddress,
		DeliveryFee:     c.deliveryFee,
		Notes:           c.notes,
	}
}
