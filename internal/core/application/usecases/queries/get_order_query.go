package queries

import (
	"errors"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery fetches one order for a party of that order. Clients issue it
// right after joining the order room so they do not miss updates published
// before the subscription.
type GetOrderQuery struct {
	orderID   kernel.UUID
	principal kernel.Principal
	guard     guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, principal kernel.Principal) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), principal.UserID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Principal() kernel.Principal {
	return q.principal
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
