package commands_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func servedEatInOrder(t *testing.T, tableID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), order.EatIn, order.Served, time.Now(),
		[]order.LineItem{mustLineItem(t, kernel.NewUUID(), 2, 16000)}, "", &tableID)
	require.NoError(t, err)
	return o
}

func TestCompleteOrderCommandHandler_Handle_EatIn(t *testing.T) {
	ctx := context.Background()

	t.Run("should free the table when no open orders remain", func(t *testing.T) {
		tableID := kernel.NewUUID()
		o := servedEatInOrder(t, tableID)
		table, err := ordertable.RestoreOrderTable(tableID, "Table 1", true, 4)
		require.NoError(t, err)
		cmd, err := commands.NewCompleteOrderCommand(o.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		tableRepo := new(MockOrderTableRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("ExistsByTableAndStatusNot", mock.Anything, tableID, order.Completed).Return(false, nil).Once(),
			uow.On("OrderTableRepository").Return(tableRepo).Once(),
			tableRepo.On("Get", mock.Anything, tableID).Return(table, nil).Once(),
			uow.On("OrderTableRepository").Return(tableRepo).Once(),
			tableRepo.On("Update", mock.Anything, table).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCompleteOrderCommandHandler(MockTableOrderUoWFactory{uow: uow})
		completed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, completed.Status())
		assert.False(t, table.IsOccupied())
		assert.Equal(t, 0, table.NumberOfGuests())
		orderRepo.AssertExpectations(t)
		tableRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should keep the table occupied while other orders are open", func(t *testing.T) {
		tableID := kernel.NewUUID()
		o := servedEatInOrder(t, tableID)
		cmd, err := commands.NewCompleteOrderCommand(o.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		tableRepo := new(MockOrderTableRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("ExistsByTableAndStatusNot", mock.Anything, tableID, order.Completed).Return(true, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCompleteOrderCommandHandler(MockTableOrderUoWFactory{uow: uow})
		completed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, completed.Status())
		tableRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		tableRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})
}

func TestCompleteOrderCommandHandler_Handle_Takeout(t *testing.T) {
	ctx := context.Background()

	t.Run("should complete served takeout order without touching tables", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.Takeout, order.Served, time.Now(),
			[]order.LineItem{mustLineItem(t, kernel.NewUUID(), 1, 16000)}, "", nil)
		require.NoError(t, err)
		cmd, err := commands.NewCompleteOrderCommand(o.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCompleteOrderCommandHandler(MockTableOrderUoWFactory{uow: uow})
		completed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, completed.Status())
		uow.AssertNotCalled(t, "OrderTableRepository")
		orderRepo.AssertExpectations(t)
	})

	t.Run("should reject completion of waiting takeout order", func(t *testing.T) {
		o, err := order.NewTakeoutOrder(kernel.NewUUID(), time.Now(),
			[]order.LineItem{mustLineItem(t, kernel.NewUUID(), 1, 16000)})
		require.NoError(t, err)
		cmd, err := commands.NewCompleteOrderCommand(o.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCompleteOrderCommandHandler(MockTableOrderUoWFactory{uow: uow})
		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, order.Waiting, o.Status())
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
