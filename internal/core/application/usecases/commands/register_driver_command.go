package commands

import (
	"errors"
	"strings"

	"orderdispatch/internal/core/domain/model/driver"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand creates the driver profile of a user.
type RegisterDriverCommand struct {
	driverID kernel.UUID
	userID   kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(driverID, userID kernel.UUID, name string) (RegisterDriverCommand, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = driver.ErrNameIsRequired
	}

	if err := errors.Join(driverID.Validate(), userID.Validate(), nameErr); err != nil {
		return RegisterDriverCommand{}, err
	}

	return RegisterDriverCommand{
		driverID: driverID,
		userID:   userID,
		name:     strings.TrimSpace(name),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c RegisterDriverCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterDriverCommand) Name() string {
	return c.name
}
