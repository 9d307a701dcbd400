package commands

import (
	"context"

	"orderdispatch/internal/core/domain/model/restaurant"
)

type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, command CreateRestaurantCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	r, err := restaurant.NewRestaurant(command.RestaurantID(), command.OwnerID(), command.Name(), command.MinOrderAmount())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
