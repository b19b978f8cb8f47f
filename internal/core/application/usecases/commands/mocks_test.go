package commands_test

import (
	"context"
	"testing"

	"forwarding/internal/core/application/transaction"
	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) FindOne(ctx context.Context, filter ports.OrderFilter) (*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, filter ports.OrderFilter, deleted *order.Order) error {
	return m.Called(ctx, filter, deleted).Error(0)
}
func (m *MockOrderRepository) ListByCustomer(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, nil
}
func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) { return nil, nil }

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	return nil, nil
}
func (m *MockCustomerRepository) AddOrder(ctx context.Context, customerID, orderID kernel.UUID) error {
	return m.Called(ctx, customerID, orderID).Error(0)
}
func (m *MockCustomerRepository) RemoveOrder(ctx context.Context, customerID, orderID kernel.UUID) error {
	return m.Called(ctx, customerID, orderID).Error(0)
}

type MockHostRepository struct{ mock.Mock }

func (m *MockHostRepository) Add(ctx context.Context, h *host.Host) error {
	return m.Called(ctx, h).Error(0)
}
func (m *MockHostRepository) Update(ctx context.Context, h *host.Host) error {
	return m.Called(ctx, h).Error(0)
}
func (m *MockHostRepository) Get(ctx context.Context, id kernel.UUID) (*host.Host, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*host.Host), args.Error(1)
}
func (m *MockHostRepository) GetAll(ctx context.Context) ([]*host.Host, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*host.Host), args.Error(1)
}
func (m *MockHostRepository) AddOrder(ctx context.Context, hostID, orderID kernel.UUID) error {
	return m.Called(ctx, hostID, orderID).Error(0)
}
func (m *MockHostRepository) RemoveOrder(ctx context.Context, hostID, orderID kernel.UUID) error {
	return m.Called(ctx, hostID, orderID).Error(0)
}

// MockUoW hands out the same repository mocks for every call.
type MockUoW struct {
	mock.Mock
	customers *MockCustomerRepository
	hosts     *MockHostRepository
	orders    *MockOrderRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		customers: &MockCustomerRepository{},
		hosts:     &MockHostRepository{},
		orders:    &MockOrderRepository{},
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CustomerRepository() ports.CustomerRepository { return m.customers }
func (m *MockUoW) HostRepository() ports.HostRepository         { return m.hosts }
func (m *MockUoW) OrderRepository() ports.OrderRepository       { return m.orders }
func (m *MockUoW) TrackedAggregates() []any                     { return nil }

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	mock.AssertExpectationsForObjects(t, m, m.customers, m.hosts, m.orders)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}

type MockQuoter struct{ mock.Mock }

func (m *MockQuoter) Quote(
	ctx context.Context,
	origin, destination kernel.Country,
	items []ports.QuoteItem,
) (ports.Quote, error) {
	args := m.Called(ctx, origin, destination, items)
	return args.Get(0).(ports.Quote), args.Error(1)
}

func newRunner(factory ports.UnitOfWorkFactory, opts ...transaction.Option) *transaction.Runner {
	opts = append(opts, transaction.WithBackOff(func() backoff.BackOff {
		return &backoff.ZeroBackOff{}
	}))
	return transaction.NewRunner(factory, opts...)
}

func address(t *testing.T, country string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(kernel.MustNewCountry(country))
	require.NoError(t, err)
	return a
}

func draftedOrder(t *testing.T, customerID kernel.UUID, origin string, items int) *order.Order {
	t.Helper()
	list := make([]*order.Item, 0, items)
	for range items {
		item, err := order.NewDraftedItem(kernel.NewUUID(), "Running shoes", "Nike", 900)
		require.NoError(t, err)
		list = append(list, item)
	}
	cost, err := order.NewCost(1500, "USD")
	require.NoError(t, err)
	o, err := order.NewDraftOrder(kernel.NewUUID(), customerID, kernel.MustNewCountry(origin),
		address(t, "DE"), list, cost)
	require.NoError(t, err)
	return o
}

func availableHost(t *testing.T, country string, orders int) *host.Host {
	t.Helper()
	ids := make([]kernel.UUID, 0, orders)
	for range orders {
		ids = append(ids, kernel.NewUUID())
	}
	h, err := host.RestoreHost(kernel.NewUUID(), address(t, country), true, ids)
	require.NoError(t, err)
	return h
}
