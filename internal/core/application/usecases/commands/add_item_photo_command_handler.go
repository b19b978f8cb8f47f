package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

type AddItemPhotoCommandHandler struct {
	runner Runner
}

func NewAddItemPhotoCommandHandler(runner Runner) AddItemPhotoCommandHandler {
	return AddItemPhotoCommandHandler{runner: runner}
}

func (h AddItemPhotoCommandHandler) Handle(ctx context.Context, command AddItemPhotoCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().Get(ctx, command.OrderID())
		if err != nil {
			return err
		}

		if err = o.AddItemPhotos(command.HostID(), command.ItemID(), command.Photos()); err != nil {
			return err
		}

		return uow.OrderRepository().Update(ctx, o)
	})
}
