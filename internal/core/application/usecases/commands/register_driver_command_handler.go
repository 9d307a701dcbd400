package commands

import (
	"context"
	"errors"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/pkg/errs"
)

// ErrDriverProfileExists is returned when the user already has a driver profile.
var ErrDriverProfileExists = errs.NewConflictError("driver", "profile already exists for this user")

type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{uowFactory: uowFactory}
}

func (h RegisterDriverCommandHandler) Handle(ctx context.Context, command RegisterDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	_, err := driverRepo.GetByUserID(ctx, command.UserID())
	switch {
	case err == nil:
		return ErrDriverProfileExists
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	d, err := driver.NewDriver(command.DriverID(), command.UserID(), command.Name())
	if err != nil {
		return err
	}

	if err = driverRepo.Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
