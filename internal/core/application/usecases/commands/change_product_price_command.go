package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrChangeProductPriceCommandIsNotConstructed = errors.New(
		"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
	)
)

// ChangeProductPriceCommand represents a request to reprice a catalog product.
// Repricing cascades: every menu containing the product is revalued, and menus
// left priced above their derived total are hidden.
type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewChangeProductPriceCommand creates a command to change a product's unit price.
// Validates that the product id is valid and the price is non-negative.
func NewChangeProductPriceCommand(productID kernel.UUID, price decimal.Decimal) (ChangeProductPriceCommand, error) {
	cmd := ChangeProductPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := productID.Validate(); err != nil {
		return ChangeProductPriceCommand{}, err
	}
	money, err := kernel.NewMoney(price)
	if err != nil {
		return ChangeProductPriceCommand{}, err
	}

	cmd.productID = productID
	cmd.price = money
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to reprice.
func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

// Price returns the new unit price.
func (c ChangeProductPriceCommand) Price() kernel.Money {
	return c.price
}
