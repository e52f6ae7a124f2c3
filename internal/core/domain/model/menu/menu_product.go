package menu

import (
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

// MenuProduct is a value object binding a product to a menu with a fixed
// quantity. The quantity is frozen at menu-creation time and never recomputed;
// the product is referenced by id only and its price is always resolved live.
type MenuProduct struct {
	productID kernel.UUID
	quantity  int64
}

// NewMenuProduct creates a MenuProduct with validation.
// The quantity must be non-negative.
func NewMenuProduct(productID kernel.UUID, quantity int64) (MenuProduct, error) {
	if err := productID.Validate(); err != nil {
		return MenuProduct{}, err
	}
	if quantity < 0 {
		return MenuProduct{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	return MenuProduct{
		productID: productID,
		quantity:  quantity,
	}, nil
}

// ProductID returns the referenced product's identifier.
func (mp MenuProduct) ProductID() kernel.UUID {
	return mp.productID
}

// Quantity returns the frozen quantity of the product within the menu.
func (mp MenuProduct) Quantity() int64 {
	return mp.quantity
}
