package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each transaction attempt.
// This ensures proper isolation between concurrent operations and between retries.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary (the session).
// Repositories it hands out run every call on its transaction, one call at a time.
type UnitOfWork interface {
	// Begin starts a new serializable transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// A serialization failure is reported as errs.ErrTransientConflict.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	HostRepository() HostRepository
	OrderRepository() OrderRepository

	// TrackedAggregates returns the aggregates added or updated through this unit of
	// work, in call order.
	TrackedAggregates() []any
}
