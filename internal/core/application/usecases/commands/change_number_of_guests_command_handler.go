package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/ordertable"
)

// ChangeNumberOfGuestsCommandHandler handles guest count updates.
// The aggregate rejects the change when the table is not occupied.
type ChangeNumberOfGuestsCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewChangeNumberOfGuestsCommandHandler creates a handler for guest count operations.
func NewChangeNumberOfGuestsCommandHandler(uowFactory TableUoWFactory) ChangeNumberOfGuestsCommandHandler {
	return ChangeNumberOfGuestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the guest count command and returns the updated table.
func (h ChangeNumberOfGuestsCommandHandler) Handle(ctx context.Context, cmd ChangeNumberOfGuestsCommand) (*ordertable.OrderTable, error) {
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

	if err = table.ChangeNumberOfGuests(cmd.NumberOfGuests()); err != nil {
		return nil, err
	}

	if err = tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
