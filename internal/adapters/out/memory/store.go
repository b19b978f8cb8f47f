// Package memory is an in-process transactional store implementing the unit of work
// contract. Transactions are optimistic: reads and scans are validated at commit and a
// transaction that observed data changed by a concurrent commit fails with
// errs.ErrTransientConflict, which makes its schedule serializable.
//
// The store is test infrastructure: the command, HTTP and concurrency tests run the real
// transaction runner against it. The application binary uses the postgres adapters.
package memory

import (
	"sync"

	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"
)

// Store holds the committed state and hands out units of work. It satisfies
// ports.UnitOfWorkFactory.
type Store struct {
	mu        sync.Mutex
	clock     uint64
	customers *table[*customer.Customer]
	hosts     *table[*host.Host]
	orders    *table[*order.Order]

	failCommits int
	commits     int
}

func NewStore() *Store {
	return &Store{
		customers: newTable[*customer.Customer](),
		hosts:     newTable[*host.Host](),
		orders:    newTable[*order.Order](),
	}
}

func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// FailNextCommits makes the next n commits fail with errs.ErrTransientConflict.
func (s *Store) FailNextCommits(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCommits = n
}

// Commits returns how many transactions committed successfully.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Snapshot returns copies of every committed aggregate, in insertion order.
func (s *Store) Snapshot() ([]*customer.Customer, []*host.Host, []*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.customers, cloneCustomer), snapshot(s.hosts, cloneHost), snapshot(s.orders, cloneOrder)
}

func snapshot[T any](t *table[T], clone func(T) T) []T {
	out := make([]T, 0, len(t.seq))
	for _, id := range t.seq {
		out = append(out, clone(t.rows[id].value))
	}
	return out
}
