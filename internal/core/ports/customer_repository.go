package ports

import (
	"context"

	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer. Returns errs.ErrDuplicateKey if the id already exists.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by id. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll returns every customer. Used by the consistency audit.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// AddOrder inserts orderID into the customer's order set.
	// Returns errs.ErrObjectNotFound when the customer is missing and
	// errs.ErrStateConflict when the id is already present.
	AddOrder(ctx context.Context, customerID, orderID kernel.UUID) error

	// RemoveOrder deletes orderID from the customer's order set.
	// Returns errs.ErrObjectNotFound when the customer is missing and
	// errs.ErrStateConflict when the id is absent.
	RemoveOrder(ctx context.Context, customerID, orderID kernel.UUID) error
}
