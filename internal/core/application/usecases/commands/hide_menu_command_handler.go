package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/menu"
)

// HideMenuCommandHandler handles hiding a menu. Hiding has no preconditions
// beyond the menu existing.
type HideMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewHideMenuCommandHandler creates a handler for menu hide operations.
func NewHideMenuCommandHandler(uowFactory CatalogUoWFactory) HideMenuCommandHandler {
	return HideMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hide command and returns the updated menu.
func (h HideMenuCommandHandler) Handle(ctx context.Context, cmd HideMenuCommand) (*menu.Menu, error) {
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

	menuRepo := uow.MenuRepository()

	hidden, err := menuRepo.Get(ctx, cmd.MenuID())
	if err != nil {
		return nil, err
	}

	hidden.Hide()

	if err = menuRepo.Update(ctx, hidden); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return hidden, nil
}
