package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

// SubmitShipmentInfoCommandHandler records the tracking number and moves the order to Shipped.
type SubmitShipmentInfoCommandHandler struct {
	runner Runner
}

func NewSubmitShipmentInfoCommandHandler(runner Runner) SubmitShipmentInfoCommandHandler {
	return SubmitShipmentInfoCommandHandler{runner: runner}
}

func (h SubmitShipmentInfoCommandHandler) Handle(ctx context.Context, command SubmitShipmentInfoCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().Get(ctx, command.OrderID())
		if err != nil {
			return err
		}

		if err = o.SubmitShipmentInfo(command.HostID(), command.ShipmentInfo()); err != nil {
			return err
		}

		return uow.OrderRepository().Update(ctx, o)
	})
}
