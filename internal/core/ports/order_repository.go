package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
)

// OrderFilter narrows FindOne and Delete to a single order. Zero-valued fields are ignored,
// except ID which is always required.
type OrderFilter struct {
	ID         kernel.UUID
	Status     order.Status
	CustomerID kernel.UUID
}

// OrderRepository defines the persistence contract for order aggregates.
// Every call runs on the session of the unit of work that produced the repository.
type OrderRepository interface {
	// Add persists a new order. Returns errs.ErrDuplicateKey if the id already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current state of an existing order.
	// Returns errs.ErrObjectNotFound if it does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindOne retrieves the order matching every set field of filter.
	// Returns errs.ErrObjectNotFound when nothing matches.
	FindOne(ctx context.Context, filter OrderFilter) (*order.Order, error)

	// Delete removes the order matching filter. Returns errs.ErrObjectNotFound unless
	// exactly one order was removed. A non-nil deleted aggregate is tracked by the unit
	// of work like an update, so the events it recorded are published after commit.
	Delete(ctx context.Context, filter OrderFilter, deleted *order.Order) error

	// ListByCustomer returns the customer's orders, oldest first.
	ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAll returns every order. Used by the consistency audit.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
