package commands

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"
)

type DeleteOrderCommandHandler struct {
	runner Runner
}

func NewDeleteOrderCommandHandler(runner Runner) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{runner: runner}
}

// Handle deletes the order and its customer back-reference atomically.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		return removeDraft(ctx, uow, command.OrderID(), command.CustomerID())
	})
}

// removeDraft deletes a Drafted order of customerID and unlinks it from the customer.
// Shared by delete and edit.
func removeDraft(ctx context.Context, uow ports.UnitOfWork, orderID, customerID kernel.UUID) error {
	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = o.EnsureEditableBy(customerID); err != nil {
		return err
	}

	if err = o.Delete(); err != nil {
		return err
	}

	err = uow.OrderRepository().Delete(ctx, ports.OrderFilter{
		ID:         orderID,
		Status:     order.Drafted,
		CustomerID: customerID,
	}, o)
	if err != nil {
		return err
	}

	return uow.CustomerRepository().RemoveOrder(ctx, customerID, orderID)
}
