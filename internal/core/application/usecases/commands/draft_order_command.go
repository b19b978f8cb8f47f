package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrDraftOrderCommandIsNotConstructed = errors.New(
	"DraftOrderCommand must be created via NewDraftOrderCommand constructor",
)

// DraftItem is the customer's description of one purchase.
type DraftItem struct {
	Title     string
	StoreName string
	Weight    int
}

type draftItem struct {
	id        kernel.UUID
	title     string
	storeName string
	weight    order.Gram
}

// DraftOrderCommand asks to quote and create a new order for a customer.
//
// The order id and item ids are generated here, once, so that a retried transaction
// creates exactly the same order.
//
// Example:
//
//	cmd, err := NewDraftOrderCommand(customerID, "US", "DE", []DraftItem{
//	    {Title: "Running shoes", StoreName: "Nike", Weight: 900},
//	})
//	err = handler.Handle(ctx, cmd)
//	orderID := cmd.OrderID()
type DraftOrderCommand struct {
	customerID    kernel.UUID
	orderID       kernel.UUID
	originCountry kernel.Country
	destination   kernel.Address
	items         []draftItem
	guard         guard.ConstructorGuard
}

// NewDraftOrderCommand validates the draft request. Same origin and destination
// countries, an empty item list or an invalid item fail here, before any transaction.
func NewDraftOrderCommand(
	customerID kernel.UUID,
	originCountry, destinationCountry string,
	items []DraftItem,
) (DraftOrderCommand, error) {
	if err := customerID.Validate(); err != nil {
		return DraftOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	origin, originErr := kernel.NewCountry(originCountry)
	destCountry, destErr := kernel.NewCountry(destinationCountry)
	if err := errors.Join(originErr, destErr); err != nil {
		return DraftOrderCommand{}, err
	}
	destination, err := kernel.NewAddress(destCountry)
	if err != nil {
		return DraftOrderCommand{}, err
	}
	if origin.IsEqual(destCountry) {
		return DraftOrderCommand{}, errs.NewValueIsInvalidError("destination country equals origin country")
	}

	if len(items) == 0 {
		return DraftOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	drafted := make([]draftItem, 0, len(items))
	for _, in := range items {
		item, itemErr := order.NewDraftedItem(kernel.NewUUID(), in.Title, in.StoreName, order.Gram(in.Weight))
		if itemErr != nil {
			return DraftOrderCommand{}, itemErr
		}
		drafted = append(drafted, draftItem{
			id:        item.ID(),
			title:     item.Title(),
			storeName: item.StoreName(),
			weight:    item.Weight(),
		})
	}

	return DraftOrderCommand{
		customerID:    customerID,
		orderID:       kernel.NewUUID(),
		originCountry: origin,
		destination:   destination,
		items:         drafted,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c DraftOrderCommand) CustomerID() kernel.UUID       { return c.customerID }
func (c DraftOrderCommand) OrderID() kernel.UUID          { return c.orderID }
func (c DraftOrderCommand) OriginCountry() kernel.Country { return c.originCountry }
func (c DraftOrderCommand) Destination() kernel.Address   { return c.destination }

func (c DraftOrderCommand) Validate() error {
	return c.guard.Validate(ErrDraftOrderCommandIsNotConstructed)
}

// buildItems creates fresh item entities for one transaction attempt.
func (c DraftOrderCommand) buildItems() ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(c.items))
	for _, in := range c.items {
		item, err := order.NewDraftedItem(in.id, in.title, in.storeName, in.weight)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (c DraftOrderCommand) weights() []order.Gram {
	out := make([]order.Gram, 0, len(c.items))
	for _, in := range c.items {
		out = append(out, in.weight)
	}
	return out
}
