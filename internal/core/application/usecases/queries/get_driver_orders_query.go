package queries

import (
	"errors"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/order"
	"orderdispatch/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery lists the orders assigned to the driver profile of a
// user, newest first, optionally narrowed to one status.
type GetDriverOrdersQuery struct {
	driverUserID kernel.UUID
	status       *order.Status
	guard        guard.ConstructorGuard
}

func NewGetDriverOrdersQuery(driverUserID kernel.UUID, status *order.Status) (GetDriverOrdersQuery, error) {
	if err := driverUserID.Validate(); err != nil {
		return GetDriverOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetDriverOrdersQuery{}, err
		}
	}
	return GetDriverOrdersQuery{driverUserID: driverUserID, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverOrdersQuery) DriverUserID() kernel.UUID {
	return q.driverUserID
}

// Status is nil when every status is requested.
func (q GetDriverOrdersQuery) Status() *order.Status {
	return q.status
}

func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}
