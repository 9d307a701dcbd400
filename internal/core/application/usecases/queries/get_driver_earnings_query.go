package queries

import (
	"errors"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/guard"
)

var ErrGetDriverEarningsQueryIsNotConstructed = errors.New(
	"GetDriverEarningsQuery must be created via NewGetDriverEarningsQuery constructor",
)

// GetDriverEarningsQuery summarizes the ledger of the driver profile of a
// user.
type GetDriverEarningsQuery struct {
	driverUserID kernel.UUID
	guard        guard.ConstructorGuard
}

func NewGetDriverEarningsQuery(driverUserID kernel.UUID) (GetDriverEarningsQuery, error) {
	if err := driverUserID.Validate(); err != nil {
		return GetDriverEarningsQuery{}, err
	}
	return GetDriverEarningsQuery{driverUserID: driverUserID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverEarningsQuery) DriverUserID() kernel.UUID {
	return q.driverUserID
}

func (q GetDriverEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverEarningsQueryIsNotConstructed)
}

// GetDriverEarningsQueryResponse carries the net total over all ledger rows
// and the rows themselves, newest first.
type GetDriverEarningsQueryResponse struct {
	TotalEarnings   kernel.Money  `json:"totalEarnings"`
	TotalDeliveries int           `json:"totalDeliveries"`
	Earnings        []EarningView `json:"earnings"`
}

type EarningView struct {
	ID           kernel.UUID      `json:"id"`
	TotalEarning kernel.Money     `json:"totalEarning"`
	PlatformFee  kernel.Money     `json:"platformFee"`
	NetEarning   kernel.Money     `json:"netEarning"`
	Currency     string           `json:"currency"`
	CreatedAt    time.Time        `json:"createdAt"`
	Order        EarningOrderView `json:"order"`
}

type EarningOrderView struct {
	ID          kernel.UUID  `json:"id"`
	OrderNumber string       `json:"orderNumber"`
	Total       kernel.Money `json:"total"`
	DeliveredAt *time.Time   `json:"deliveredAt,omitempty"`
}
