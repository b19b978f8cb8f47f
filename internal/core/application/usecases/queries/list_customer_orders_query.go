package queries

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery lists the orders of one customer, oldest first.
type ListCustomerOrdersQuery struct {
	customerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(customerID kernel.UUID) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	return ListCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}
