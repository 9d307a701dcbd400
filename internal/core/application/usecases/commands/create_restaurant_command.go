package commands

import (
	"errors"
	"strings"

	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/domain/model/restaurant"
	"orderdispatch/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand registers the ordering side of a restaurant. The
// menu lives in the catalog service.
type CreateRestaurantCommand struct {
	restaurantID   kernel.UUID
	ownerID        kernel.UUID
	name           string
	minOrderAmount kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(
	restaurantID, ownerID kernel.UUID,
	name string,
	minOrderAmount kernel.Money,
) (CreateRestaurantCommand, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = restaurant.ErrNameIsRequired
	}

	if err := errors.Join(restaurantID.Validate(), ownerID.Validate(), nameErr); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return CreateRestaurantCommand{
		restaurantID:   restaurantID,
		ownerID:        ownerID,
		name:           strings.TrimSpace(name),
		minOrderAmount: minOrderAmount,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}

func (c CreateRestaurantCommand) MinOrderAmount() kernel.Money {
	return c.minOrderAmount
}
