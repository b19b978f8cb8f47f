package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand replaces a Drafted order with a new draft built from the new payload.
// The replacement gets a new order id, available through Draft().OrderID().
type EditOrderCommand struct {
	orderID kernel.UUID
	draft   DraftOrderCommand
	guard   guard.ConstructorGuard
}

func NewEditOrderCommand(
	customerID, orderID kernel.UUID,
	originCountry, destinationCountry string,
	items []DraftItem,
) (EditOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return EditOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	draft, err := NewDraftOrderCommand(customerID, originCountry, destinationCountry, items)
	if err != nil {
		return EditOrderCommand{}, err
	}

	return EditOrderCommand{
		orderID: orderID,
		draft:   draft,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c EditOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c EditOrderCommand) CustomerID() kernel.UUID  { return c.draft.CustomerID() }
func (c EditOrderCommand) Draft() DraftOrderCommand { return c.draft }

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}
