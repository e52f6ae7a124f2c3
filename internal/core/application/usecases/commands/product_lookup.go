package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/ports"
)

// loadProductLookup fetches every product referenced by the given menus and
// returns them keyed by id, the shape the MenuPricing service consumes.
// Completeness is not checked here; DerivedTotal fails on a missing product.
func loadProductLookup(ctx context.Context, repo ports.ProductRepository, menus ...*menu.Menu) (map[kernel.UUID]*product.Product, error) {
	seen := make(map[kernel.UUID]struct{})
	ids := make([]kernel.UUID, 0)
	for _, m := range menus {
		for _, mp := range m.MenuProducts() {
			if _, ok := seen[mp.ProductID()]; ok {
				continue
			}
			seen[mp.ProductID()] = struct{}{}
			ids = append(ids, mp.ProductID())
		}
	}

	products, err := repo.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lookup := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		lookup[p.ID()] = p
	}
	return lookup, nil
}
