package commands

import (
	"errors"
	"fmt"
	"time"

	"orderdispatch/internal/pkg/errs"
	"orderdispatch/internal/pkg/guard"
)

var ErrRepublishStaleReadyOrdersCommandIsNotConstructed = errors.New(
	"RepublishStaleReadyOrdersCommand must be created via NewRepublishStaleReadyOrdersCommand constructor",
)

// RepublishStaleReadyOrdersCommand re-announces ready orders no driver has
// claimed for longer than olderThan.
type RepublishStaleReadyOrdersCommand struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewRepublishStaleReadyOrdersCommand(olderThan time.Duration) (RepublishStaleReadyOrdersCommand, error) {
	if olderThan <= 0 {
		return RepublishStaleReadyOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("olderThan",
			fmt.Errorf("%s is not greater than 0", olderThan))
	}

	return RepublishStaleReadyOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RepublishStaleReadyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRepublishStaleReadyOrdersCommandIsNotConstructed)
}

func (c RepublishStaleReadyOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}
