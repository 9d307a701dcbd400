package commands

import (
	"context"
	"time"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/core/domain/services"
	"orderdispatch/internal/core/ports"
)

// ClaimOrderCommandHandler assigns a ready order to the calling driver.
//
// The order write is conditional on status ready, no driver and the loaded
// version; the driver write is conditional on availability and version. Both
// happen in one transaction, so of any number of concurrent claims exactly
// one commits and the others get an "order already assigned" conflict.
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	dispatcher services.OrderDispatcher
}

func NewClaimOrderCommandHandler(uowFactory UoWFactory, publisher ports.NotificationPublisher) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		dispatcher: services.NewOrderDispatcher(),
	}
}

func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	claimed, claimant, err := h.claim(ctx, command)
	if err != nil {
		return err
	}

	room := ports.OrderRoom(claimed.ID())
	h.publisher.Publish(ctx, room, ports.EventDriverAssigned, newDriverAssignedPayload(claimed, claimant))

	payload := newOrderUpdatedPayload(claimed)
	h.publisher.Publish(ctx, room, ports.EventOrderUpdate, payload)
	if restaurantID := claimed.RestaurantID(); restaurantID != nil {
		h.publisher.Publish(ctx, ports.RestaurantRoom(*restaurantID), ports.EventOrderUpdate, payload)
	}

	return nil
}

func (h ClaimOrderCommandHandler) claim(ctx context.Context, command ClaimOrderCommand) (*order.Order, *driver.Driver, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	d, err := driverRepo.GetByUserID(ctx, command.DriverUserID())
	if err != nil {
		return nil, nil, err
	}

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, nil, err
	}

	if err = h.dispatcher.Claim(o, d, time.Now()); err != nil {
		return nil, nil, err
	}

	if err = orderRepo.Claim(ctx, o); err != nil {
		return nil, nil, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return o, d, nil
}
