package commands

import (
	"context"
	"errors"
	"time"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/core/domain/model/restaurant"
	"orderdispatch/internal/core/domain/services"
	"orderdispatch/internal/core/ports"
	"orderdispatch/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler authorizes and applies a status change.
// Cancelling an order a driver is carrying frees that driver in the same
// transaction.
//
// After commit it publishes order:update to the order and restaurant rooms,
// and order_ready to the drivers room when the order became ready.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	policy     services.TransitionPolicy
}

func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewTransitionPolicy(),
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	changed, err := h.change(ctx, command)
	if err != nil {
		return err
	}

	payload := newOrderUpdatedPayload(changed)
	h.publisher.Publish(ctx, ports.OrderRoom(changed.ID()), ports.EventOrderUpdate, payload)
	if restaurantID := changed.RestaurantID(); restaurantID != nil {
		h.publisher.Publish(ctx, ports.RestaurantRoom(*restaurantID), ports.EventOrderUpdate, payload)
	}
	if changed.Status() == order.Ready {
		h.publisher.Publish(ctx, ports.DriversRoom, ports.EventOrderReady, newOrderReadyPayload(changed))
	}

	return nil
}

func (h ChangeOrderStatusCommandHandler) change(ctx context.Context, command ChangeOrderStatusCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()
	restaurantRepo := uow.RestaurantRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	actor, err := resolveActor(ctx, restaurantRepo, driverRepo, command.Actor(), o)
	if err != nil {
		return nil, err
	}

	if err = h.policy.Authorize(actor, o, command.Target()); err != nil {
		return nil, err
	}

	details := order.TransitionDetails{
		EstimatedMinutes: command.EstimatedMinutes(),
		Reason:           command.Reason(),
	}
	if actor.Restaurant != nil {
		details.RestaurantName = actor.Restaurant.Name()
	}

	previous := o.Status()
	if err = o.Transition(command.Target(), details, time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if o.Status() == order.Cancelled && previous.HoldsDriver() && o.DriverID() != nil {
		if err = releaseDriver(ctx, driverRepo, *o.DriverID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// resolveActor loads the order's restaurant and, for drivers, the caller's
// driver profile.
func resolveActor(
	ctx context.Context,
	restaurantRepo ports.RestaurantRepository,
	driverRepo ports.DriverRepository,
	principal kernel.Principal,
	o *order.Order,
) (services.Actor, error) {
	actor := services.Actor{Principal: principal}

	if restaurantID := o.RestaurantID(); restaurantID != nil {
		r, err := restaurantRepo.Get(ctx, *restaurantID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return services.Actor{}, err
		}
		actor.Restaurant = restaurantOrNil(r, err)
	}

	if principal.Is(kernel.RoleDriver) {
		d, err := driverRepo.GetByUserID(ctx, principal.UserID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return services.Actor{}, err
		}
		actor.Driver = driverOrNil(d, err)
	}

	return actor, nil
}

func releaseDriver(ctx context.Context, driverRepo ports.DriverRepository, driverID kernel.UUID) error {
	d, err := driverRepo.Get(ctx, driverID)
	if err != nil {
		return err
	}
	d.Release()
	return driverRepo.Update(ctx, d)
}

func restaurantOrNil(r *restaurant.Restaurant, err error) *restaurant.Restaurant {
	if err != nil {
		return nil
	}
	return r
}

func driverOrNil(d *driver.Driver, err error) *driver.Driver {
	if err != nil {
		return nil
	}
	return d
}
