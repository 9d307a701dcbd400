package queries

import (
	"errors"
	"strings"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/errs"
	"orderdispatch/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New("TrackOrderQuery must be created via NewTrackOrderQuery constructor")

// TrackOrderQuery looks an order up by its public number. Guests track
// anonymously; a signed in user must be a party of the order.
type TrackOrderQuery struct {
	orderNumber string
	principal   *kernel.Principal
	guard       guard.ConstructorGuard
}

func NewTrackOrderQuery(orderNumber string, principal *kernel.Principal) (TrackOrderQuery, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("orderNumber")
	}
	return TrackOrderQuery{orderNumber: orderNumber, principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackOrderQuery) OrderNumber() string {
	return q.orderNumber
}

func (q TrackOrderQuery) Principal() *kernel.Principal {
	return q.principal
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}
