package commands

import (
	"context"

	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/ports"
)

type CreateCustomerCommandHandler struct {
	runner Runner
}

func NewCreateCustomerCommandHandler(runner Runner) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{runner: runner}
}

func (h CreateCustomerCommandHandler) Handle(ctx context.Context, command CreateCustomerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		c, err := customer.NewCustomer(command.CustomerID(), command.Address())
		if err != nil {
			return err
		}

		return uow.CustomerRepository().Add(ctx, c)
	})
}
