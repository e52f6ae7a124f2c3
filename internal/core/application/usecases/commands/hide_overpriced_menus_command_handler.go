package commands

import (
	"context"

	"kitchenpos/internal/core/domain/services"
)

// HideOverpricedMenusCommandHandler revalues every displayed menu against
// current product prices and hides the ones priced above their derived total.
type HideOverpricedMenusCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewHideOverpricedMenusCommandHandler creates a handler for the audit sweep.
func NewHideOverpricedMenusCommandHandler(uowFactory CatalogUoWFactory) HideOverpricedMenusCommandHandler {
	return HideOverpricedMenusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs the sweep and returns the number of menus hidden.
func (h HideOverpricedMenusCommandHandler) Handle(ctx context.Context, cmd HideOverpricedMenusCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()

	menus, err := menuRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	lookup, err := loadProductLookup(ctx, uow.ProductRepository(), menus...)
	if err != nil {
		return 0, err
	}

	pricing := services.NewMenuPricing()
	hidden := 0
	for _, m := range menus {
		if !m.IsDisplayed() {
			continue
		}

		total, totalErr := pricing.DerivedTotal(m, lookup)
		if totalErr != nil {
			return 0, totalErr
		}
		if m.HideIfOverpriced(total) {
			if err = menuRepo.Update(ctx, m); err != nil {
				return 0, err
			}
			hidden++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return hidden, nil
}
