package memory

import (
	"context"
	"errors"
	"sync/atomic"

	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

var ErrNoTransaction = errors.New("no active transaction")

type UnitOfWork struct {
	store *Store

	customers *txTable[*customer.Customer]
	hosts     *txTable[*host.Host]
	orders    *txTable[*order.Order]

	tracked []any
	busy    atomic.Bool
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.orders != nil {
		return nil
	}

	u.customers = newTxTable(u.store.customers, cloneCustomer)
	u.hosts = newTxTable(u.store.hosts, cloneHost)
	u.orders = newTxTable(u.store.orders, cloneOrder)
	u.tracked = nil
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.orders == nil {
		return ErrNoTransaction
	}
	defer u.reset()

	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failCommits > 0 {
		s.failCommits--
		return errs.ErrTransientConflict
	}

	if !u.customers.valid() || !u.hosts.valid() || !u.orders.valid() {
		return errs.ErrTransientConflict
	}

	s.clock++
	u.customers.apply(s.clock)
	u.hosts.apply(s.clock)
	u.orders.apply(s.clock)
	s.commits++
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.orders == nil {
		return ErrNoTransaction
	}
	u.reset()
	return nil
}

func (u *UnitOfWork) reset() {
	u.customers, u.hosts, u.orders = nil, nil, nil
}

func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &customerRepository{uow: u}
}

func (u *UnitOfWork) HostRepository() ports.HostRepository {
	return &hostRepository{uow: u}
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

func (u *UnitOfWork) TrackedAggregates() []any {
	return append([]any(nil), u.tracked...)
}

// enter serializes access to the session and locks the store for one repository call.
func (u *UnitOfWork) enter() (func(), error) {
	if !u.busy.CompareAndSwap(false, true) {
		return nil, errs.ErrConcurrentSessionUse
	}
	if u.orders == nil {
		u.busy.Store(false)
		return nil, ErrNoTransaction
	}

	u.store.mu.Lock()
	return func() {
		u.store.mu.Unlock()
		u.busy.Store(false)
	}, nil
}

func (u *UnitOfWork) track(aggregate any) {
	u.tracked = append(u.tracked, aggregate)
}
