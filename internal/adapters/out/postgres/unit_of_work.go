// Package postgres provides the GORM-based Unit of Work the transaction runner drives.
//
// Every unit of work owns at most one SERIALIZABLE transaction. Repositories obtained
// from it run on that transaction and register the aggregates they write so domain
// events can be published after commit.
//
// Basic transaction management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    _ = uow.Rollback(ctx)
//	    return err
//	}
//	if err := uow.CustomerRepository().AddOrder(ctx, o.CustomerID(), o.ID()); err != nil {
//	    _ = uow.Rollback(ctx)
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Concurrency considerations:
//   - A unit of work is a single session: repository calls on it must be sequential.
//     Overlapping calls fail with errs.ErrConcurrentSessionUse instead of racing on the
//     underlying connection.
//   - Concurrent requests use separate units of work; PostgreSQL reports conflicting
//     serializable transactions with SQLSTATE 40001, surfaced as errs.ErrTransientConflict.
package postgres

import (
	"context"
	"database/sql"
	"sync/atomic"

	"forwarding/internal/adapters/out/postgres/customerrepo"
	"forwarding/internal/adapters/out/postgres/hostrepo"
	"forwarding/internal/adapters/out/postgres/orderrepo"
	"forwarding/internal/adapters/out/postgres/pgerr"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with no transaction and nothing tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one serializable transaction and tracks the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
	busy              atomic.Bool
}

// Begin starts a SERIALIZABLE transaction. Calling Begin again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return pgerr.Map(tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. Serialization failures detected at commit time are
// returned as errs.ErrTransientConflict.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerr.Map(err)
}

// Rollback discards the transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) HostRepository() ports.HostRepository {
	return hostrepo.NewGormHostRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// conn returns the open transaction, or the pool when Begin was not called.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// Enter marks the session busy for the duration of one repository call.
func (uow *GormUnitOfWork) Enter() (func(), error) {
	if !uow.busy.CompareAndSwap(false, true) {
		return nil, errs.ErrConcurrentSessionUse
	}
	return func() { uow.busy.Store(false) }, nil
}

// TrackAggregate registers an aggregate written within this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) TrackedAggregates() []any {
	out := make([]any, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		out = append(out, t.Aggregate)
	}
	return out
}
