package commands

import (
	"context"

	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/ports"
)

type CreateHostCommandHandler struct {
	runner Runner
}

func NewCreateHostCommandHandler(runner Runner) CreateHostCommandHandler {
	return CreateHostCommandHandler{runner: runner}
}

func (h CreateHostCommandHandler) Handle(ctx context.Context, command CreateHostCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		aggregate, err := host.NewHost(command.HostID(), command.Address(), command.Available())
		if err != nil {
			return err
		}

		return uow.HostRepository().Add(ctx, aggregate)
	})
}
