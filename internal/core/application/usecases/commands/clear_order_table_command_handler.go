package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"
)

// ClearOrderTableCommandHandler handles freeing a table.
// Clearing requires that no order referencing the table is still open; the
// check and the reset commit in one transaction so a concurrently placed
// order cannot slip between them.
type ClearOrderTableCommandHandler struct {
	uowFactory TableOrderUoWFactory
}

// NewClearOrderTableCommandHandler creates a handler for table clearing operations.
func NewClearOrderTableCommandHandler(uowFactory TableOrderUoWFactory) ClearOrderTableCommandHandler {
	return ClearOrderTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command and returns the freed table.
func (h ClearOrderTableCommandHandler) Handle(ctx context.Context, cmd ClearOrderTableCommand) (*ordertable.OrderTable, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.OrderTableRepository()

	table, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}

	open, err := uow.OrderRepository().ExistsByTableAndStatusNot(ctx, table.ID(), order.Completed)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, errs.NewInvalidStateError("order table has uncompleted orders")
	}

	table.Clear()

	if err = tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
