package commands

import (
	"context"

	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// ConfirmOrderCommandHandler selects the host for a Drafted order and links both sides.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoHostAvailable):
//	    // nobody can receive items in the origin country right now
//	case errors.Is(err, errs.ErrStateConflict):
//	    // the order was already confirmed
//	}
type ConfirmOrderCommandHandler struct {
	runner  Runner
	matcher services.HostMatcher
}

func NewConfirmOrderCommandHandler(runner Runner) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		runner:  runner,
		matcher: services.NewHostMatcher(),
	}
}

// Handle confirms the order. No write happens when no host is available.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().Get(ctx, command.OrderID())
		if err != nil {
			return err
		}
		if !o.IsOwnedBy(command.CustomerID()) {
			return errs.NewObjectNotFoundError("order", command.OrderID().String())
		}

		hosts, err := uow.HostRepository().GetAll(ctx)
		if err != nil {
			return err
		}

		selected, err := h.matcher.Match(o, hosts)
		if err != nil {
			return err
		}

		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}

		return uow.HostRepository().AddOrder(ctx, selected.ID(), o.ID())
	})
}
