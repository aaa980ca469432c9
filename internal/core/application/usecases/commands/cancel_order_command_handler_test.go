package commands_test

import (
	"testing"
	"time"

	"salesorder/internal/core/application/usecases/commands"
	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCancelOrderCommand(orderID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
	})

	t.Run("should fail with unconstructed order id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.UUID{})

		require.Error(t, err)
	})
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	salesOrder := newPendingOrder(t, time.Now().Add(-time.Hour))
	cmd, _ := commands.NewCancelOrderCommand(salesOrder.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, salesOrder.ID()).Return(salesOrder, nil).Once(),
		repo.On("Update", mock.Anything, salesOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, salesOrder.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyShipped(t *testing.T) {
	ctx := t.Context()
	salesOrder := newPendingOrder(t, time.Now().Add(-time.Hour))
	require.NoError(t, salesOrder.Confirm())
	require.NoError(t, salesOrder.Ship())
	cmd, _ := commands.NewCancelOrderCommand(salesOrder.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, salesOrder.ID()).Return(salesOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Shipped is not a valid status to cancel")
	assert.Equal(t, order.Shipped, salesOrder.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
