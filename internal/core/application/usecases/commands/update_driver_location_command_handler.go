package commands

import (
	"context"
	"time"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/ports"
	"orderdispatch/internal/pkg/errs"
)

// UpdateDriverLocationCommandHandler stores the position (last write wins)
// and forwards it to the order room. A driver may only broadcast to an order
// assigned to them.
type UpdateDriverLocationCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
}

func NewUpdateDriverLocationCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, command UpdateDriverLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	d, err := h.update(ctx, command)
	if err != nil {
		return err
	}

	if orderID := command.OrderID(); orderID != nil {
		location := command.Location()
		h.publisher.Publish(ctx, ports.OrderRoom(*orderID), ports.EventDriverLocation, DriverLocationPayload{
			OrderID:   orderID.String(),
			DriverID:  d.ID().String(),
			Latitude:  location.Latitude(),
			Longitude: location.Longitude(),
			Timestamp: *d.LastLocationUpdate(),
		})
	}

	return nil
}

func (h UpdateDriverLocationCommandHandler) update(
	ctx context.Context,
	command UpdateDriverLocationCommand,
) (*driver.Driver, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	d, err := driverRepo.GetByUserID(ctx, command.DriverUserID())
	if err != nil {
		return nil, err
	}

	if orderID := command.OrderID(); orderID != nil {
		o, getErr := orderRepo.Get(ctx, *orderID)
		if getErr != nil {
			return nil, getErr
		}
		if !o.IsAssignedTo(d.ID()) {
			return nil, errs.NewForbiddenError("broadcast driver location", "order is not assigned to you")
		}
	}

	if err = d.UpdateLocation(command.Location(), time.Now()); err != nil {
		return nil, err
	}

	if err = driverRepo.UpdateLocation(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
