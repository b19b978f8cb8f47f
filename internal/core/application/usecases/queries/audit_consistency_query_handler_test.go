package queries_test

import (
	"context"
	"testing"

	"forwarding/internal/adapters/out/memory"
	"forwarding/internal/core/application/transaction"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, store *memory.Store, fn func(ctx context.Context, uow ports.UnitOfWork)) {
	t.Helper()
	ctx := t.Context()
	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	fn(ctx, uow)
	require.NoError(t, uow.Commit(ctx))
}

func draft(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewDraftedItem(kernel.NewUUID(), "Running shoes", "Nike", 900)
	require.NoError(t, err)
	cost, err := order.NewCost(2500, "USD")
	require.NoError(t, err)
	dest, err := kernel.NewAddress(kernel.MustNewCountry("DE"))
	require.NoError(t, err)
	o, err := order.NewDraftOrder(kernel.NewUUID(), customerID, kernel.MustNewCountry("US"), dest,
		[]*order.Item{item}, cost)
	require.NoError(t, err)
	return o
}

func TestAuditConsistencyQueryHandler_Handle(t *testing.T) {
	store := memory.NewStore()
	handler := queries.NewAuditConsistencyQueryHandler(transaction.NewRunner(store))

	address, err := kernel.NewAddress(kernel.MustNewCountry("DE"))
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), address)
	require.NoError(t, err)
	linked := draft(t, c.ID())
	orphan := draft(t, c.ID())

	seed(t, store, func(ctx context.Context, uow ports.UnitOfWork) {
		require.NoError(t, uow.CustomerRepository().Add(ctx, c))
		require.NoError(t, uow.OrderRepository().Add(ctx, linked))
		require.NoError(t, uow.CustomerRepository().AddOrder(ctx, c.ID(), linked.ID()))
	})

	got, err := handler.Handle(t.Context(), queries.NewAuditConsistencyQuery())
	require.NoError(t, err)
	assert.Equal(t, 1, got.Customers)
	assert.Equal(t, 1, got.Orders)
	assert.Empty(t, got.Violations)

	seed(t, store, func(ctx context.Context, uow ports.UnitOfWork) {
		require.NoError(t, uow.OrderRepository().Add(ctx, orphan))
	})

	got, err = handler.Handle(t.Context(), queries.NewAuditConsistencyQuery())
	require.NoError(t, err)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, services.MissingCustomerRef, got.Violations[0].Kind)
	assert.Equal(t, orphan.ID(), got.Violations[0].OrderID)
}

func TestAuditConsistencyQuery_NotConstructedViaConstructor(t *testing.T) {
	handler := queries.NewAuditConsistencyQueryHandler(transaction.NewRunner(memory.NewStore()))
	_, err := handler.Handle(t.Context(), queries.AuditConsistencyQuery{})
	assert.ErrorIs(t, err, queries.ErrAuditConsistencyQueryIsNotConstructed)
}
