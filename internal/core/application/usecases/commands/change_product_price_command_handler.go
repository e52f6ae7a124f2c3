package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/services"
)

// ChangeProductPriceCommandHandler handles product repricing and the resulting
// cascade across menus. This is the one place a catalog mutation crosses
// aggregate boundaries: after the product price is written, every menu
// containing the product is revalued against live prices and hidden if its own
// price now exceeds the derived total. Hiding is one-directional; a later
// price rise never re-displays a menu.
//
// Example:
//
//	handler := NewChangeProductPriceCommandHandler(uowFactory)
//	cmd, _ := NewChangeProductPriceCommand(productID, decimal.NewFromInt(9000))
//	updated, err := handler.Handle(ctx, cmd)
type ChangeProductPriceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewChangeProductPriceCommandHandler creates a handler for product repricing operations.
func NewChangeProductPriceCommandHandler(uowFactory CatalogUoWFactory) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the repricing command and returns the updated product.
// The price write, menu revaluation, and any display flips commit atomically.
func (h ChangeProductPriceCommandHandler) Handle(ctx context.Context, cmd ChangeProductPriceCommand) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	menuRepo := uow.MenuRepository()

	repriced, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	repriced.ChangePrice(cmd.Price())
	if err = productRepo.Update(ctx, repriced); err != nil {
		return nil, err
	}

	menus, err := menuRepo.GetAllByProductID(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	lookup, err := loadProductLookup(ctx, productRepo, menus...)
	if err != nil {
		return nil, err
	}
	// The lookup was read within this transaction and already reflects the new
	// price, but the in-memory aggregate is authoritative either way.
	lookup[repriced.ID()] = repriced

	pricing := services.NewMenuPricing()
	for _, m := range menus {
		total, totalErr := pricing.DerivedTotal(m, lookup)
		if totalErr != nil {
			return nil, totalErr
		}
		if m.HideIfOverpriced(total) {
			if err = menuRepo.Update(ctx, m); err != nil {
				return nil, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return repriced, nil
}
