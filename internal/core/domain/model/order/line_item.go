package order

import (
	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// LineItem is a value object binding a menu to an order with a quantity and a
// frozen copy of the menu price captured at order-creation time. The frozen
// price is what couples orders to menu pricing: at creation it must equal the
// menu's current price exactly, so any drift between the customer-facing price
// and the live catalog rejects the order.
//
// LineItem is immutable after order creation. Quantity sign rules depend on
// the order channel and are enforced by the Order factory functions, not here.
type LineItem struct {
	menuID   kernel.UUID
	quantity int64
	price    kernel.Money
}

// NewLineItem creates a LineItem with validation of the menu reference.
func NewLineItem(menuID kernel.UUID, quantity int64, price kernel.Money) (LineItem, error) {
	if err := menuID.Validate(); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		menuID:   menuID,
		quantity: quantity,
		price:    price,
	}, nil
}

// MenuID returns the referenced menu's identifier.
func (li LineItem) MenuID() kernel.UUID {
	return li.menuID
}

// Quantity returns the ordered quantity. Negative on eat-in adjustment lines.
func (li LineItem) Quantity() int64 {
	return li.quantity
}

// Price returns the menu price frozen at order-creation time.
func (li LineItem) Price() kernel.Money {
	return li.price
}

// Total returns price multiplied by quantity. May be negative.
func (li LineItem) Total() decimal.Decimal {
	return li.price.MulQuantity(li.quantity)
}
