package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/services"
)

// ChangeMenuPriceCommandHandler handles menu repricing.
// The new price is checked against the derived total computed from current
// product prices, not the prices in effect when the menu was created.
type ChangeMenuPriceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewChangeMenuPriceCommandHandler creates a handler for menu repricing operations.
func NewChangeMenuPriceCommandHandler(uowFactory CatalogUoWFactory) ChangeMenuPriceCommandHandler {
	return ChangeMenuPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu repricing command and returns the updated menu.
func (h ChangeMenuPriceCommandHandler) Handle(ctx context.Context, cmd ChangeMenuPriceCommand) (*menu.Menu, error) {
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

	repriced, err := menuRepo.Get(ctx, cmd.MenuID())
	if err != nil {
		return nil, err
	}

	lookup, err := loadProductLookup(ctx, uow.ProductRepository(), repriced)
	if err != nil {
		return nil, err
	}

	total, err := services.NewMenuPricing().DerivedTotal(repriced, lookup)
	if err != nil {
		return nil, err
	}

	if err = repriced.ChangePrice(cmd.Price(), total); err != nil {
		return nil, err
	}

	if err = menuRepo.Update(ctx, repriced); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return repriced, nil
}
