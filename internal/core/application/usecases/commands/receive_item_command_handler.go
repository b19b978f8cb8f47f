package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

// ReceiveItemCommandHandler marks an item as received. The order moves to ItemReceived
// once every item has a receive date.
type ReceiveItemCommandHandler struct {
	runner Runner
}

func NewReceiveItemCommandHandler(runner Runner) ReceiveItemCommandHandler {
	return ReceiveItemCommandHandler{runner: runner}
}

func (h ReceiveItemCommandHandler) Handle(ctx context.Context, command ReceiveItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().Get(ctx, command.OrderID())
		if err != nil {
			return err
		}

		if err = o.ReceiveItem(command.HostID(), command.ItemID(), command.ReceivedAt()); err != nil {
			return err
		}

		return uow.OrderRepository().Update(ctx, o)
	})
}
