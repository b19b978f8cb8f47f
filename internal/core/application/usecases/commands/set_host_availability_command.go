package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrSetHostAvailabilityCommandIsNotConstructed = errors.New(
	"SetHostAvailabilityCommand must be created via NewSetHostAvailabilityCommand constructor",
)

type SetHostAvailabilityCommand struct {
	hostID    kernel.UUID
	available bool
	guard     guard.ConstructorGuard
}

func NewSetHostAvailabilityCommand(hostID kernel.UUID, available bool) (SetHostAvailabilityCommand, error) {
	if err := hostID.Validate(); err != nil {
		return SetHostAvailabilityCommand{}, errs.NewValueIsRequiredErrorWithCause("hostID", err)
	}

	return SetHostAvailabilityCommand{
		hostID:    hostID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetHostAvailabilityCommand) HostID() kernel.UUID { return c.hostID }
func (c SetHostAvailabilityCommand) Available() bool     { return c.available }

func (c SetHostAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetHostAvailabilityCommandIsNotConstructed)
}
