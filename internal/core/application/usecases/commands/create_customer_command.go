package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer with the address orders are shipped to by default.
type CreateCustomerCommand struct {
	customerID kernel.UUID
	address    kernel.Address
	guard      guard.ConstructorGuard
}

func NewCreateCustomerCommand(country string) (CreateCustomerCommand, error) {
	c, err := kernel.NewCountry(country)
	if err != nil {
		return CreateCustomerCommand{}, err
	}
	address, err := kernel.NewAddress(c)
	if err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		customerID: kernel.NewUUID(),
		address:    address,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateCustomerCommand) Address() kernel.Address { return c.address }

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}
