package kernel

import "forwarding/internal/pkg/errs"

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is where a customer receives shipments or where a host receives items.
// Only the country takes part in matching and pricing.
type Address struct {
	country Country
}

func NewAddress(country Country) (Address, error) {
	if err := country.Validate(); err != nil {
		return Address{}, err
	}
	return Address{country: country}, nil
}

func (a Address) Country() Country {
	return a.country
}

func (a Address) IsEqual(other Address) bool {
	return a.country.IsEqual(other.country)
}

func (a Address) Validate() error {
	if err := a.country.Validate(); err != nil {
		return ErrAddressIsNotConstructed
	}
	return nil
}
