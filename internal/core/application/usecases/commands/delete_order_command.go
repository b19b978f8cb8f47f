package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand asks to remove a Drafted order owned by the customer.
type DeleteOrderCommand struct {
	customerID kernel.UUID
	orderID    kernel.UUID
	guard      guard.ConstructorGuard
}

func NewDeleteOrderCommand(customerID, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := errors.Join(customerID.Validate(), orderID.Validate()); err != nil {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("customerID, orderID", err)
	}

	return DeleteOrderCommand{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c DeleteOrderCommand) OrderID() kernel.UUID    { return c.orderID }

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}
