package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateMenuCommandIsNotConstructed = errors.New(
		"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
	)
)

// CreateMenuCommand represents a request to compose a new menu from catalog
// products under a menu group.
//
// Example:
//
//	mp, _ := menu.NewMenuProduct(productID, 2)
//	cmd, err := NewCreateMenuCommand("Two Fried Chickens", decimal.NewFromInt(19000),
//	    groupID, true, []menu.MenuProduct{mp})
//	if err != nil {
//	    return fmt.Errorf("invalid menu data: %w", err)
//	}
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	name         string
	price        kernel.Money
	menuGroupID  kernel.UUID
	displayed    bool
	menuProducts []menu.MenuProduct

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand creates a command to register a new menu.
// Validates the name, price, menu group reference, and that at least one menu
// product is present. Product existence, the price-versus-derived-total check,
// and profanity screening happen in the handler.
func NewCreateMenuCommand(
	name string,
	price decimal.Decimal,
	menuGroupID kernel.UUID,
	displayed bool,
	menuProducts []menu.MenuProduct,
) (CreateMenuCommand, error) {
	menuCommand := CreateMenuCommand{
		displayed: displayed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menuCommand.setName(name),
		menuCommand.setPrice(price),
		menuCommand.setMenuGroupID(menuGroupID),
		menuCommand.setMenuProducts(menuProducts),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return menuCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

// Name returns the requested menu name.
func (c CreateMenuCommand) Name() string {
	return c.name
}

// Price returns the requested menu price.
func (c CreateMenuCommand) Price() kernel.Money {
	return c.price
}

// MenuGroupID returns the identifier of the group the menu belongs to.
func (c CreateMenuCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

// Displayed returns whether the menu should be visible on creation.
func (c CreateMenuCommand) Displayed() bool {
	return c.displayed
}

// MenuProducts returns the requested product bindings.
func (c CreateMenuCommand) MenuProducts() []menu.MenuProduct {
	products := make([]menu.MenuProduct, len(c.menuProducts))
	copy(products, c.menuProducts)
	return products
}

func (c *CreateMenuCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateMenuCommand) setPrice(price decimal.Decimal) error {
	money, err := kernel.NewMoney(price)
	if err != nil {
		return err
	}

	c.price = money
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}

	c.menuGroupID = menuGroupID
	return nil
}

func (c *CreateMenuCommand) setMenuProducts(menuProducts []menu.MenuProduct) error {
	if len(menuProducts) == 0 {
		return errs.NewValueIsRequiredError("menuProducts")
	}

	c.menuProducts = make([]menu.MenuProduct, len(menuProducts))
	copy(c.menuProducts, menuProducts)
	return nil
}
