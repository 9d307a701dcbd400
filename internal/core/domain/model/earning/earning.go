// Package earning models the driver earnings ledger: one insert-only row per
// delivered order splitting the delivery fee between platform and driver.
package earning

import (
	"errors"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/guard"
)

// PlatformFeePercent is the platform's share of each delivery fee.
const PlatformFeePercent = 20

// DefaultDeliveryFee is paid out when the order carries no delivery fee.
var DefaultDeliveryFee = kernel.MustMoney("5.00")

var ErrDriverEarningIsNotConstructed = errors.New("DriverEarning must be created via NewDriverEarning constructor")

// DriverEarning is one ledger row. Rows are never updated.
type DriverEarning struct {
	id           kernel.UUID
	driverID     kernel.UUID
	orderID      kernel.UUID
	totalEarning kernel.Money
	platformFee  kernel.Money
	netEarning   kernel.Money
	currency     string
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewDriverEarning splits deliveryFee, or DefaultDeliveryFee when it is nil.
// platformFee is rounded to cents and netEarning is the remainder, so the two
// always add up to the total.
func NewDriverEarning(id, driverID, orderID kernel.UUID, deliveryFee *kernel.Money, now time.Time) (*DriverEarning, error) {
	if err := errors.Join(id.Validate(), driverID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	total := DefaultDeliveryFee
	if deliveryFee != nil {
		total = *deliveryFee
	}
	platformFee := total.Percent(PlatformFeePercent)

	return &DriverEarning{
		id:           id,
		driverID:     driverID,
		orderID:      orderID,
		totalEarning: total,
		platformFee:  platformFee,
		netEarning:   total.Sub(platformFee),
		currency:     kernel.Currency,
		createdAt:    now.UTC(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Snapshot is the persisted state of a ledger row.
type Snapshot struct {
	ID           kernel.UUID
	DriverID     kernel.UUID
	OrderID      kernel.UUID
	TotalEarning kernel.Money
	PlatformFee  kernel.Money
	NetEarning   kernel.Money
	Currency     string
	CreatedAt    time.Time
}

func RestoreDriverEarning(s Snapshot) (*DriverEarning, error) {
	if err := errors.Join(s.ID.Validate(), s.DriverID.Validate(), s.OrderID.Validate()); err != nil {
		return nil, err
	}
	return &DriverEarning{
		id:           s.ID,
		driverID:     s.DriverID,
		orderID:      s.OrderID,
		totalEarning: s.TotalEarning,
		platformFee:  s.PlatformFee,
		netEarning:   s.NetEarning,
		currency:     s.Currency,
		createdAt:    s.CreatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (e *DriverEarning) Validate() error {
	if e == nil {
		return ErrDriverEarningIsNotConstructed
	}
	return e.guard.Validate(ErrDriverEarningIsNotConstructed)
}

func (e *DriverEarning) ID() kernel.UUID { return e.id }
func (e *DriverEarning) DriverID() kernel.UUID { return e.driverID }
func (e *DriverEarning) OrderID() kernel.UUID { return e.orderID }
func (e *DriverEarning) TotalEarning() kernel.Money { return e.totalEarning }
func (e *DriverEarning) PlatformFee() kernel.Money { return e.platformFee }
func (e *DriverEarning) NetEarning() kernel.Money { return e.netEarning }
func (e *DriverEarning) Currency() string { return e.currency }
func (e *DriverEarning) CreatedAt() time.Time { return e.createdAt }
