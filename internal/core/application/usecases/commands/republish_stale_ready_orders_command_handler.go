package commands

import (
	"context"
	"time"

	"orderdispatch/internal/core/ports"
)

// RepublishStaleReadyOrdersCommandHandler publishes order_ready to the drivers
// room for every ready order that has waited longer than the threshold. It
// never cancels or otherwise changes the orders.
type RepublishStaleReadyOrdersCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
}

func NewRepublishStaleReadyOrdersCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
) RepublishStaleReadyOrdersCommandHandler {
	return RepublishStaleReadyOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of orders announced.
func (h RepublishStaleReadyOrdersCommandHandler) Handle(
	ctx context.Context,
	command RepublishStaleReadyOrdersCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.OrderRepository().GetAllReadyUnclaimedSince(ctx, time.Now().Add(-command.OlderThan()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, o := range stale {
		h.publisher.Publish(ctx, ports.DriversRoom, ports.EventOrderReady, newOrderReadyPayload(o))
	}

	return len(stale), nil
}
