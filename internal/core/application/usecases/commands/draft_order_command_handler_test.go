package commands_test

import (
	"errors"
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func draftCommand(t *testing.T, customerID kernel.UUID) commands.DraftOrderCommand {
	t.Helper()
	cmd, err := commands.NewDraftOrderCommand(customerID, "US", "DE", []commands.DraftItem{
		{Title: "Running shoes", StoreName: "Nike", Weight: 900},
		{Title: "Denim jacket", StoreName: "Levi's", Weight: 1200},
	})
	require.NoError(t, err)
	return cmd
}

func usdQuote() ports.Quote {
	return ports.Quote{
		Currency: "USD",
		Services: []services.QuotedService{
			{Name: "express", Price: 4200},
			{Name: "economy", Price: 1900},
		},
	}
}

func TestDraftOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	c, err := customer.NewCustomer(kernel.NewUUID(), address(t, "DE"))
	require.NoError(t, err)
	cmd := draftCommand(t, c.ID())

	quoter := &MockQuoter{}
	quoter.On("Quote", mock.Anything, kernel.MustNewCountry("US"), kernel.MustNewCountry("DE"),
		[]ports.QuoteItem{{Weight: 900}, {Weight: 1200}}).Return(usdQuote(), nil).Once()

	uow := newMockUoW()
	var added *order.Order
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.customers.On("Get", mock.Anything, c.ID()).Return(c, nil).Once(),
		uow.orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.customers.On("AddOrder", mock.Anything, c.ID(), cmd.OrderID()).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
	)

	factory := &MockUoWFactory{}
	factory.On("Create").Return(uow).Once()

	h := commands.NewDraftOrderCommandHandler(newRunner(factory), quoter, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, added)
	assert.Equal(t, cmd.OrderID(), added.ID())
	assert.Equal(t, order.Drafted, added.Status())
	assert.Equal(t, int64(4200), added.ShipmentCost().Amount())
	assert.Len(t, added.Items(), 2)
	uow.assertAll(t)
	mock.AssertExpectationsForObjects(t, factory, quoter)
}

func TestDraftOrderCommandHandler_Handle_CheapestPolicy(t *testing.T) {
	ctx := t.Context()
	c, err := customer.NewCustomer(kernel.NewUUID(), address(t, "DE"))
	require.NoError(t, err)
	cmd := draftCommand(t, c.ID())

	quoter := &MockQuoter{}
	quoter.On("Quote", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(usdQuote(), nil)

	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.customers.On("Get", mock.Anything, c.ID()).Return(c, nil)
	uow.customers.On("AddOrder", mock.Anything, c.ID(), cmd.OrderID()).Return(nil)
	uow.orders.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.ShipmentCost().Amount() == 1900
	})).Return(nil).Once()

	factory := &MockUoWFactory{}
	factory.On("Create").Return(uow)

	h := commands.NewDraftOrderCommandHandler(newRunner(factory), quoter, services.CheapestService)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.orders.AssertExpectations(t)
}

func TestDraftOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := draftCommand(t, kernel.NewUUID())

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.customers.On("Get", mock.Anything, cmd.CustomerID()).
			Return(nil, errs.NewObjectNotFoundError("customer", cmd.CustomerID().String())).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := &MockUoWFactory{}
	factory.On("Create").Return(uow).Once()

	quoter := &MockQuoter{}
	h := commands.NewDraftOrderCommandHandler(newRunner(factory), quoter, nil)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.assertAll(t)
	quoter.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestDraftOrderCommandHandler_Handle_QuoteError(t *testing.T) {
	ctx := t.Context()
	c, err := customer.NewCustomer(kernel.NewUUID(), address(t, "DE"))
	require.NoError(t, err)
	cmd := draftCommand(t, c.ID())

	quoteErr := errors.New("carrier rates unavailable")
	quoter := &MockQuoter{}
	quoter.On("Quote", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(ports.Quote{}, quoteErr).Once()

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.customers.On("Get", mock.Anything, c.ID()).Return(c, nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := &MockUoWFactory{}
	factory.On("Create").Return(uow).Once()

	h := commands.NewDraftOrderCommandHandler(newRunner(factory), quoter, nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, quoteErr)
	uow.assertAll(t)
}

func TestDraftOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := &MockUoWFactory{}
	h := commands.NewDraftOrderCommandHandler(newRunner(factory), &MockQuoter{}, nil)

	err := h.Handle(ctx, commands.DraftOrderCommand{})

	require.ErrorIs(t, err, commands.ErrDraftOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
