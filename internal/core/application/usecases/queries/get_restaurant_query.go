package queries

import (
	"errors"
	"time"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/guard"
)

var ErrGetRestaurantQueryIsNotConstructed = errors.New(
	"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
)

// GetRestaurantQuery reads one restaurant by id.
type GetRestaurantQuery struct {
	restaurantID kernel.UUID
	guard        guard.ConstructorGuard
}

func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}
	return GetRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

type RestaurantView struct {
	ID             kernel.UUID  `json:"id"`
	OwnerID        kernel.UUID  `json:"ownerId"`
	Name           string       `json:"name"`
	IsActive       bool         `json:"isActive"`
	IsOpen         bool         `json:"isOpen"`
	MinOrderAmount kernel.Money `json:"minOrderAmount"`
	TotalOrders    int          `json:"totalOrders"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// IsOwnedBy reports whether userID owns the restaurant.
func (v RestaurantView) IsOwnedBy(userID kernel.UUID) bool {
	return v.OwnerID.IsEqual(userID)
}
