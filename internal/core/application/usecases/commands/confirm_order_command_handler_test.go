package commands_test

import (
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := draftedOrder(t, customerID, "US", 1)
	busy := availableHost(t, "US", 2)
	free := availableHost(t, "US", 0)

	cmd, err := commands.NewConfirmOrderCommand(customerID, o.ID())
	require.NoError(t, err)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.hosts.On("GetAll", mock.Anything).Return([]*host.Host{busy, free}, nil).Once(),
		uow.orders.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.hosts.On("AddOrder", mock.Anything, free.ID(), o.ID()).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
	)

	factory := &MockUoWFactory{}
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(newRunner(factory))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Confirmed, o.Status())
	assert.True(t, o.IsAssignedTo(free.ID()))
	uow.assertAll(t)
}

func TestConfirmOrderCommandHandler_Handle_NoHostAvailable(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := draftedOrder(t, customerID, "US", 1)
	elsewhere := availableHost(t, "GB", 0)

	cmd, err := commands.NewConfirmOrderCommand(customerID, o.ID())
	require.NoError(t, err)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.hosts.On("GetAll", mock.Anything).Return([]*host.Host{elsewhere}, nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := &MockUoWFactory{}
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(newRunner(factory))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNoHostAvailable)
	assert.Equal(t, order.Drafted, o.Status())
	uow.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.hosts.AssertNotCalled(t, "AddOrder", mock.Anything, mock.Anything, mock.Anything)
	uow.assertAll(t)
}

func TestConfirmOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	o := draftedOrder(t, kernel.NewUUID(), "US", 1)

	cmd, err := commands.NewConfirmOrderCommand(kernel.NewUUID(), o.ID())
	require.NoError(t, err)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := &MockUoWFactory{}
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(newRunner(factory))
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.assertAll(t)
}
