package queries

import (
	"errors"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves every driver profile for the admin console,
// with availability and last known location.
//
// Example:
//
//	query := NewGetAllDriversQuery()
//	handler := NewGetAllDriversQueryHandler(db)
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve drivers: %w", err)
//	}
//
//	for _, d := range drivers {
//	    fmt.Printf("%s available=%t\n", d.Name, d.IsAvailable)
//	}
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate returns ErrGetAllDriversQueryIsNotConstructed for a zero query.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// GetAllDriversQueryResponse is one driver in the read model. Location is
// nil until the driver reports a position.
type GetAllDriversQueryResponse struct {
	ID                 kernel.UUID      `json:"id"`
	UserID             kernel.UUID      `json:"userId"`
	Name               string           `json:"name"`
	IsAvailable        bool             `json:"isAvailable"`
	Location           *CoordinatesView `json:"currentLocation,omitempty"`
	LastLocationUpdate *time.Time       `json:"lastLocationUpdate,omitempty"`
	TotalEarnings      kernel.Money     `json:"totalEarnings"`
	TotalDeliveries    int              `json:"totalDeliveries"`
}
