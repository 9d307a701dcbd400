package commands

import (
	"context"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/core/domain/services"
	"orderdispatch/internal/core/ports"
)

// CompleteDeliveryCommandHandler marks the order delivered, frees the driver,
// updates the driver's totals and inserts the ledger row, all in one unit of
// work.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	dispatcher services.OrderDispatcher
}

func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		dispatcher: services.NewOrderDispatcher(),
	}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	delivered, err := h.complete(ctx, command)
	if err != nil {
		return err
	}

	payload := newOrderUpdatedPayload(delivered)
	h.publisher.Publish(ctx, ports.OrderRoom(delivered.ID()), ports.EventOrderUpdate, payload)
	if restaurantID := delivered.RestaurantID(); restaurantID != nil {
		h.publisher.Publish(ctx, ports.RestaurantRoom(*restaurantID), ports.EventOrderUpdate, payload)
	}

	return nil
}

func (h CompleteDeliveryCommandHandler) complete(ctx context.Context, command CompleteDeliveryCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()
	earningRepo := uow.EarningRepository()

	d, err := driverRepo.GetByUserID(ctx, command.DriverUserID())
	if err != nil {
		return nil, err
	}

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	entry, err := h.dispatcher.Complete(o, d, kernel.NewUUID(), command.Note(), command.Photo(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = earningRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
