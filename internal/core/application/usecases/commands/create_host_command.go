package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrCreateHostCommandIsNotConstructed = errors.New(
	"CreateHostCommand must be created via NewCreateHostCommand constructor",
)

// CreateHostCommand registers a host receiving items at an address in one country.
type CreateHostCommand struct {
	hostID    kernel.UUID
	address   kernel.Address
	available bool
	guard     guard.ConstructorGuard
}

func NewCreateHostCommand(country string, available bool) (CreateHostCommand, error) {
	c, err := kernel.NewCountry(country)
	if err != nil {
		return CreateHostCommand{}, err
	}
	address, err := kernel.NewAddress(c)
	if err != nil {
		return CreateHostCommand{}, err
	}

	return CreateHostCommand{
		hostID:    kernel.NewUUID(),
		address:   address,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateHostCommand) HostID() kernel.UUID     { return c.hostID }
func (c CreateHostCommand) Address() kernel.Address { return c.address }
func (c CreateHostCommand) Available() bool         { return c.available }

func (c CreateHostCommand) Validate() error {
	return c.guard.Validate(ErrCreateHostCommandIsNotConstructed)
}
