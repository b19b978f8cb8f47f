package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand asks to match a Drafted order to a host.
type ConfirmOrderCommand struct {
	customerID kernel.UUID
	orderID    kernel.UUID
	guard      guard.ConstructorGuard
}

func NewConfirmOrderCommand(customerID, orderID kernel.UUID) (ConfirmOrderCommand, error) {
	if err := errors.Join(customerID.Validate(), orderID.Validate()); err != nil {
		return ConfirmOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("customerID, orderID", err)
	}

	return ConfirmOrderCommand{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c ConfirmOrderCommand) OrderID() kernel.UUID    { return c.orderID }

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}
