package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
)

// CreateOrderTableCommandHandler handles order table creation.
// New tables start unoccupied with zero guests.
type CreateOrderTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewCreateOrderTableCommandHandler creates a handler for table creation operations.
func NewCreateOrderTableCommandHandler(uowFactory TableUoWFactory) CreateOrderTableCommandHandler {
	return CreateOrderTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table creation command and returns the created table.
func (h CreateOrderTableCommandHandler) Handle(ctx context.Context, cmd CreateOrderTableCommand) (*ordertable.OrderTable, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	table, err := ordertable.NewOrderTable(kernel.NewUUID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderTableRepository().Add(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
