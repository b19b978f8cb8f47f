package ports

import (
	"context"

	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
)

// HostRepository defines the persistence contract for host aggregates.
type HostRepository interface {
	// Add persists a new host. Returns errs.ErrDuplicateKey if the id already exists.
	Add(ctx context.Context, aggregate *host.Host) error

	// Update persists address and availability of an existing host. The order set is
	// only changed through AddOrder and RemoveOrder.
	Update(ctx context.Context, aggregate *host.Host) error

	// Get retrieves a host by id. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, id kernel.UUID) (*host.Host, error)

	// GetAll returns every host in registration order. Host matching relies on this
	// order being stable.
	GetAll(ctx context.Context) ([]*host.Host, error)

	// AddOrder inserts orderID into the host's order set.
	// Returns errs.ErrObjectNotFound when the host is missing and
	// errs.ErrStateConflict when the id is already present.
	AddOrder(ctx context.Context, hostID, orderID kernel.UUID) error

	// RemoveOrder deletes orderID from the host's order set.
	// Returns errs.ErrObjectNotFound when the host is missing and
	// errs.ErrStateConflict when the id is absent.
	RemoveOrder(ctx context.Context, hostID, orderID kernel.UUID) error
}
