package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

// EditOrderCommandHandler deletes a Drafted order, unlinks it from its customer and
// drafts the replacement, all in one transaction. If the redraft fails nothing changes.
type EditOrderCommandHandler struct {
	runner Runner
	draft  DraftOrderCommandHandler
}

func NewEditOrderCommandHandler(runner Runner, draft DraftOrderCommandHandler) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		runner: runner,
		draft:  draft,
	}
}

func (h EditOrderCommandHandler) Handle(ctx context.Context, command EditOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		if err := removeDraft(ctx, uow, command.OrderID(), command.CustomerID()); err != nil {
			return err
		}

		return h.draft.Handle(ctx, command.Draft())
	})
}
