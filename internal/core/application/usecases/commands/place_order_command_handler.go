package commands

import (
	"context"
	"errors"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/core/ports"
)

// maxOrderNumberAttempts bounds the retries on an order number collision.
const maxOrderNumberAttempts = 5

// PlaceOrderResult identifies the order that was placed.
type PlaceOrderResult struct {
	OrderID     kernel.UUID
	OrderNumber string
	Status      order.Status
	Total       kernel.Money
}

// PlaceOrderCommandHandler stores the order and bumps the restaurant's order
// count in one transaction, then notifies the restaurant room.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	publisher  ports.NotificationPublisher
}

func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	publisher ports.NotificationPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle generates an order number and places the order, retrying with a
// fresh number when the store reports a collision.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := command.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	for range maxOrderNumberAttempts {
		placed, err := h.place(ctx, command, order.NewOrderNumber(time.Now()))
		if errors.Is(err, order.ErrOrderNumberTaken) {
			continue
		}
		if err != nil {
			return PlaceOrderResult{}, err
		}

		h.publisher.Publish(ctx, ports.RestaurantRoom(command.RestaurantID()), ports.EventNewOrder,
			newNewOrderPayload(placed))

		return PlaceOrderResult{
			OrderID:     placed.ID(),
			OrderNumber: placed.Number(),
			Status:      placed.Status(),
			Total:       placed.Total(),
		}, nil
	}

	return PlaceOrderResult{}, order.ErrOrderNumberTaken
}

func (h PlaceOrderCommandHandler) place(ctx context.Context, command PlaceOrderCommand, number string) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	orderRepo := uow.OrderRepository()

	r, err := restaurantRepo.Get(ctx, command.RestaurantID())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(command.placeParams(number), time.Now())
	if err != nil {
		return nil, err
	}

	if err = r.CheckNewOrder(placed.Subtotal()); err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = restaurantRepo.IncrementTotalOrders(ctx, r.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
