package services

import (
	"time"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/earning"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
)

// OrderDispatcher couples the Order and Driver aggregates for the steps of
// the lifecycle that involve both.
//
// Business rules:
//   - only a ready, unassigned order can be claimed
//   - only an available driver can claim
//   - the driver's position is seeded from the delivery coordinates
//   - completing a delivery frees the driver and books one ledger row
//
// Example usage:
//
//	dispatcher := NewOrderDispatcher()
//	if err := dispatcher.Claim(o, d, time.Now()); err != nil {
//	    // order already assigned, not ready, or driver busy
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Claim assigns o to d. Neither aggregate is modified when an error is
// returned.
func (OrderDispatcher) Claim(o *order.Order, d *driver.Driver, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.IsAvailable() {
		return driver.ErrDriverIsBusy
	}

	if err := o.AssignDriver(d.ID(), d.Name(), now); err != nil {
		return err
	}

	return d.TakeOrder(o.DeliveryAddress().Coordinates, now)
}

// Complete delivers o on behalf of d and returns the ledger row to insert.
func (OrderDispatcher) Complete(
	o *order.Order,
	d *driver.Driver,
	earningID kernel.UUID,
	note, photo string,
	now time.Time,
) (*earning.DriverEarning, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	entry, err := earning.NewDriverEarning(earningID, d.ID(), o.ID(), o.DeliveryFee(), now)
	if err != nil {
		return nil, err
	}

	if err = o.Deliver(d.ID(), note, photo, now); err != nil {
		return nil, err
	}

	d.CompleteDelivery(entry.NetEarning())
	return entry, nil
}
