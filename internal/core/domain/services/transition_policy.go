package services

import (
	"fmt"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/core/domain/model/restaurant"
	"orderdispatch/internal/pkg/errs"
)

// Actor is the principal requesting a status change together with the
// profiles that principal owns, as far as they matter for the order.
type Actor struct {
	Principal kernel.Principal
	// Restaurant is the order's restaurant, or nil when the order has none.
	Restaurant *restaurant.Restaurant
	// Driver is the principal's driver profile, or nil when there is none.
	Driver *driver.Driver
}

// TransitionPolicy decides who may move an order to a target status.
//
//	accepted, preparing, ready, rejected   restaurant owner, admin
//	out_for_delivery                        assigned driver, admin
//	cancelled                               admin (any non-terminal),
//	                                        restaurant owner (before pickup),
//	                                        ordering customer (while placed)
//
// picked_up and delivered are set by the dispatch operations only and are
// refused as invalid before any authorization check. Whether any other edge
// is legal is decided by the order.
type TransitionPolicy struct{}

func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

func (TransitionPolicy) Authorize(actor Actor, o *order.Order, target order.Status) error {
	if target == order.PickedUp || target == order.Delivered || target == order.Placed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s cannot be requested directly", target))
	}
	if actor.Principal.IsAdmin() {
		return nil
	}

	action := fmt.Sprintf("set order status to %s", target)

	//nolint:exhaustive // everything else is refused below
	switch target {
	case order.Accepted, order.Preparing, order.Ready, order.Rejected:
		if ownsRestaurant(actor, o) {
			return nil
		}
		return errs.NewForbiddenError(action, "only the restaurant owner can do this")

	case order.OutForDelivery:
		if actor.Principal.Is(kernel.RoleDriver) && actor.Driver != nil && o.IsAssignedTo(actor.Driver.ID()) {
			return nil
		}
		return errs.NewForbiddenError(action, "order is not assigned to you")

	case order.Cancelled:
		if ownsRestaurant(actor, o) {
			if o.Status().HoldsDriver() {
				return errs.NewForbiddenError(action, "order has already been picked up")
			}
			return nil
		}
		if o.IsPlacedBy(actor.Principal.UserID) {
			if o.Status() != order.Placed {
				return errs.NewForbiddenError(action, "order has already been accepted")
			}
			return nil
		}
		return errs.NewForbiddenError(action, "not your order")
	}

	return errs.NewForbiddenError(action, fmt.Sprintf("%s is not a requestable status", target))
}

func ownsRestaurant(actor Actor, o *order.Order) bool {
	if !actor.Principal.Is(kernel.RoleRestaurant) || actor.Restaurant == nil || o.RestaurantID() == nil {
		return false
	}
	return actor.Restaurant.ID().IsEqual(*o.RestaurantID()) && actor.Restaurant.IsOwnedBy(actor.Principal.UserID)
}
