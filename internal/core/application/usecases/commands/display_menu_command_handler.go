package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/services"
)

// DisplayMenuCommandHandler handles making a menu visible.
// Displaying re-checks the pricing invariant: a menu priced above the derived
// total of its products at current prices cannot be shown and the operation
// fails with a state conflict.
type DisplayMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDisplayMenuCommandHandler creates a handler for menu display operations.
func NewDisplayMenuCommandHandler(uowFactory CatalogUoWFactory) DisplayMenuCommandHandler {
	return DisplayMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the display command and returns the updated menu.
func (h DisplayMenuCommandHandler) Handle(ctx context.Context, cmd DisplayMenuCommand) (*menu.Menu, error) {
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

	displayed, err := menuRepo.Get(ctx, cmd.MenuID())
	if err != nil {
		return nil, err
	}

	lookup, err := loadProductLookup(ctx, uow.ProductRepository(), displayed)
	if err != nil {
		return nil, err
	}

	total, err := services.NewMenuPricing().DerivedTotal(displayed, lookup)
	if err != nil {
		return nil, err
	}

	if err = displayed.Display(total); err != nil {
		return nil, err
	}

	if err = menuRepo.Update(ctx, displayed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return displayed, nil
}
