package services

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MenuPricing is a stateless domain service that values a menu against the
// current prices of its constituent products.
//
// The derived total of a menu is the sum over its menu products of the
// product's current unit price times the quantity frozen at menu creation.
// A menu may only be displayed while its own price does not exceed that total;
// arithmetic is exact decimal throughout.
//
// Example usage:
//
//	pricing := services.NewMenuPricing()
//	total, err := pricing.DerivedTotal(m, productsByID)
//	if err != nil {
//	    // a referenced product is missing from the lookup
//	}
//	if m.Price().GreaterThan(total) {
//	    // menu is priced above the sum of its parts
//	}
type MenuPricing struct{}

// NewMenuPricing creates a new MenuPricing instance.
func NewMenuPricing() MenuPricing {
	return MenuPricing{}
}

// DerivedTotal sums product price times frozen quantity over the menu's
// products, resolving each product id through the lookup. Returns an
// ObjectNotFoundError if any referenced product is missing.
func (MenuPricing) DerivedTotal(m *menu.Menu, products map[kernel.UUID]*product.Product) (decimal.Decimal, error) {
	if err := m.Validate(); err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, menuProduct := range m.MenuProducts() {
		p, ok := products[menuProduct.ProductID()]
		if !ok {
			return decimal.Zero, errs.NewObjectNotFoundError("productId", menuProduct.ProductID().String())
		}
		sum = sum.Add(p.Price().MulQuantity(menuProduct.Quantity()))
	}

	return sum, nil
}

// IsDisplayable reports whether the menu's price is within its derived total,
// the precondition for the menu to be visible to customers.
func (s MenuPricing) IsDisplayable(m *menu.Menu, products map[kernel.UUID]*product.Product) (bool, error) {
	total, err := s.DerivedTotal(m, products)
	if err != nil {
		return false, err
	}

	return !m.Price().GreaterThan(total), nil
}
