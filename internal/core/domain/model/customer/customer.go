package customer

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer drafts orders and ships them to their selected address.
//
// orderIDs holds the id of every non-deleted order the customer owns. It is changed only
// inside the same transaction as the order it refers to.
type Customer struct {
	id              kernel.UUID
	selectedAddress kernel.Address
	orderIDs        kernel.OrderSet
	guard           guard.ConstructorGuard
}

// NewCustomer registers a customer with no orders.
func NewCustomer(id kernel.UUID, selectedAddress kernel.Address) (*Customer, error) {
	return RestoreCustomer(id, selectedAddress, nil)
}

// RestoreCustomer rebuilds a customer from storage.
func RestoreCustomer(id kernel.UUID, selectedAddress kernel.Address, orderIDs []kernel.UUID) (*Customer, error) {
	if err := errors.Join(id.Validate(), selectedAddress.Validate()); err != nil {
		return nil, err
	}

	return &Customer{
		id:              id,
		selectedAddress: selectedAddress,
		orderIDs:        kernel.NewOrderSet(orderIDs...),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID                   { return c.id }
func (c *Customer) SelectedAddress() kernel.Address   { return c.selectedAddress }
func (c *Customer) OrderIDs() []kernel.UUID           { return c.orderIDs.IDs() }
func (c *Customer) HasOrder(orderID kernel.UUID) bool { return c.orderIDs.Contains(orderID) }

// AddOrder links an order. Linking an already linked order is a state conflict.
func (c *Customer) AddOrder(orderID kernel.UUID) error {
	if !c.orderIDs.Add(orderID) {
		return errs.NewStateConflictError("customer", c.id, "order "+orderID.String()+" is already linked")
	}
	return nil
}

// RemoveOrder unlinks an order. Unlinking an unknown order is a state conflict.
func (c *Customer) RemoveOrder(orderID kernel.UUID) error {
	if !c.orderIDs.Remove(orderID) {
		return errs.NewStateConflictError("customer", c.id, "order "+orderID.String()+" is not linked")
	}
	return nil
}
