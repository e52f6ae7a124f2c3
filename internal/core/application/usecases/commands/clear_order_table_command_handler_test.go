package commands_test

import (
	"context"
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClearOrderTableCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should clear table with no open orders", func(t *testing.T) {
		tableID := kernel.NewUUID()
		table, err := ordertable.RestoreOrderTable(tableID, "Table 1", true, 4)
		require.NoError(t, err)
		cmd, err := commands.NewClearOrderTableCommand(tableID)
		require.NoError(t, err)

		tableRepo := new(MockOrderTableRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderTableRepository").Return(tableRepo).Once(),
			tableRepo.On("Get", mock.Anything, tableID).Return(table, nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("ExistsByTableAndStatusNot", mock.Anything, tableID, order.Completed).Return(false, nil).Once(),
			tableRepo.On("Update", mock.Anything, table).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewClearOrderTableCommandHandler(MockTableOrderUoWFactory{uow: uow})
		cleared, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, cleared.IsOccupied())
		assert.Equal(t, 0, cleared.NumberOfGuests())
		tableRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should refuse to clear table with uncompleted orders", func(t *testing.T) {
		tableID := kernel.NewUUID()
		table, err := ordertable.RestoreOrderTable(tableID, "Table 1", true, 4)
		require.NoError(t, err)
		cmd, err := commands.NewClearOrderTableCommand(tableID)
		require.NoError(t, err)

		tableRepo := new(MockOrderTableRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderTableRepository").Return(tableRepo).Once(),
			tableRepo.On("Get", mock.Anything, tableID).Return(table, nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("ExistsByTableAndStatusNot", mock.Anything, tableID, order.Completed).Return(true, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewClearOrderTableCommandHandler(MockTableOrderUoWFactory{uow: uow})
		cleared, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Nil(t, cleared)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.True(t, table.IsOccupied())
		tableRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should fail for unknown table", func(t *testing.T) {
		tableID := kernel.NewUUID()
		cmd, err := commands.NewClearOrderTableCommand(tableID)
		require.NoError(t, err)

		tableRepo := new(MockOrderTableRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderTableRepository").Return(tableRepo).Once(),
			tableRepo.On("Get", mock.Anything, tableID).
				Return(nil, errs.NewObjectNotFoundError("orderTable", tableID.String())).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewClearOrderTableCommandHandler(MockTableOrderUoWFactory{uow: uow})
		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
