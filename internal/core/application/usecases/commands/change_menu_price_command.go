package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrChangeMenuPriceCommandIsNotConstructed = errors.New(
		"ChangeMenuPriceCommand must be created via NewChangeMenuPriceCommand constructor",
	)
)

// ChangeMenuPriceCommand represents a request to reprice a menu.
// The new price must not exceed the menu's derived total at current product
// prices, which the handler verifies.
type ChangeMenuPriceCommand struct { //nolint:recvcheck //using for validation
	menuID kernel.UUID
	price  kernel.Money

	guard guard.ConstructorGuard
}

// NewChangeMenuPriceCommand creates a command to change a menu's price.
// Validates that the menu id is valid and the price is non-negative.
func NewChangeMenuPriceCommand(menuID kernel.UUID, price decimal.Decimal) (ChangeMenuPriceCommand, error) {
	cmd := ChangeMenuPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := menuID.Validate(); err != nil {
		return ChangeMenuPriceCommand{}, err
	}
	money, err := kernel.NewMoney(price)
	if err != nil {
		return ChangeMenuPriceCommand{}, err
	}

	cmd.menuID = menuID
	cmd.price = money
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeMenuPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeMenuPriceCommandIsNotConstructed)
}

// MenuID returns the identifier of the menu to reprice.
func (c ChangeMenuPriceCommand) MenuID() kernel.UUID {
	return c.menuID
}

// Price returns the new menu price.
func (c ChangeMenuPriceCommand) Price() kernel.Money {
	return c.price
}
