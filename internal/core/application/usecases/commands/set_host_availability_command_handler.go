package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

// SetHostAvailabilityCommandHandler toggles whether a host takes new orders.
// Orders already assigned to the host are unaffected.
type SetHostAvailabilityCommandHandler struct {
	runner Runner
}

func NewSetHostAvailabilityCommandHandler(runner Runner) SetHostAvailabilityCommandHandler {
	return SetHostAvailabilityCommandHandler{runner: runner}
}

func (h SetHostAvailabilityCommandHandler) Handle(ctx context.Context, command SetHostAvailabilityCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		aggregate, err := uow.HostRepository().Get(ctx, command.HostID())
		if err != nil {
			return err
		}

		aggregate.SetAvailability(command.Available())

		return uow.HostRepository().Update(ctx, aggregate)
	})
}
