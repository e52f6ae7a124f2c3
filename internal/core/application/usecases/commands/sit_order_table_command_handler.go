package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/ordertable"
)

// SitOrderTableCommandHandler handles seating a table.
type SitOrderTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewSitOrderTableCommandHandler creates a handler for table seating operations.
func NewSitOrderTableCommandHandler(uowFactory TableUoWFactory) SitOrderTableCommandHandler {
	return SitOrderTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the seating command and returns the updated table.
func (h SitOrderTableCommandHandler) Handle(ctx context.Context, cmd SitOrderTableCommand) (*ordertable.OrderTable, error) {
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

	table.Sit()

	if err = tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
