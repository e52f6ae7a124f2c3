// Package menu provides the Menu aggregate: a priced, displayable bundle of
// products. A menu snapshots its constituent products and quantities at
// creation time, but product prices are always resolved live, so a menu can
// drift into being priced above the sum of its parts. The governing invariant
// is that a displayed menu's price never exceeds that derived total; when the
// invariant is threatened the menu is hidden, never silently repriced.
package menu

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMenuIsNotConstructed is returned when a Menu instance was not created
// through the NewMenu or RestoreMenu factory functions.
var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

// Menu represents a priced bundle of products offered under a menu group.
//
// Menu maintains these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Must reference a menu group and carry at least one menu product
//   - Price is non-negative, guaranteed by kernel.Money
//   - While displayed, the price must not exceed the derived total of its
//     menu products at current product prices; enforcement is one-directional,
//     violating menus are hidden and never automatically re-displayed
//
// The price comparisons take the derived total as a parameter: computing it
// requires a live product lookup, which is the job of the MenuPricing domain
// service.
type Menu struct {
	id           kernel.UUID
	name         string
	price        kernel.Money
	menuGroupID  kernel.UUID
	displayed    bool
	menuProducts []MenuProduct

	isConstructed bool
}

// NewMenu creates a new Menu with validation.
// The price-versus-derived-total check has to be carried out by the caller
// before deciding to construct a displayed menu, since it needs product prices.
func NewMenu(
	id kernel.UUID,
	name string,
	price kernel.Money,
	menuGroupID kernel.UUID,
	displayed bool,
	menuProducts []MenuProduct,
) (*Menu, error) {
	menu := &Menu{
		isConstructed: true,
	}

	if err := errors.Join(
		menu.setID(id),
		menu.setName(name),
		menu.setMenuGroupID(menuGroupID),
		menu.setMenuProducts(menuProducts),
	); err != nil {
		return nil, err
	}

	menu.price = price
	menu.displayed = displayed
	return menu, nil
}

// RestoreMenu reconstructs a Menu from persistence.
func RestoreMenu(
	id kernel.UUID,
	name string,
	price kernel.Money,
	menuGroupID kernel.UUID,
	displayed bool,
	menuProducts []MenuProduct,
) (*Menu, error) {
	return NewMenu(id, name, price, menuGroupID, displayed, menuProducts)
}

// Validate ensures the Menu instance was properly constructed.
func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}

	return nil
}

// IsEqual compares two menus by their unique identifiers.
func (m *Menu) IsEqual(other *Menu) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu's unique identifier.
func (m *Menu) ID() kernel.UUID {
	return m.id
}

// Name returns the menu's display name.
func (m *Menu) Name() string {
	return m.name
}

// Price returns the menu's current price.
func (m *Menu) Price() kernel.Money {
	return m.price
}

// MenuGroupID returns the identifier of the group the menu belongs to.
func (m *Menu) MenuGroupID() kernel.UUID {
	return m.menuGroupID
}

// IsDisplayed reports whether the menu is currently visible to customers.
func (m *Menu) IsDisplayed() bool {
	return m.displayed
}

// MenuProducts returns a copy of the menu's product bindings.
func (m *Menu) MenuProducts() []MenuProduct {
	products := make([]MenuProduct, len(m.menuProducts))
	copy(products, m.menuProducts)
	return products
}

// ChangePrice replaces the menu price after checking it against the derived
// total at current product prices. Returns a validation error when the new
// price exceeds the total.
func (m *Menu) ChangePrice(price kernel.Money, derivedTotal decimal.Decimal) error {
	if price.GreaterThan(derivedTotal) {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s exceeds menu products total %s", price, derivedTotal))
	}

	m.price = price
	return nil
}

// Display makes the menu visible. Returns an InvalidStateError when the menu
// price currently exceeds the derived total of its products.
func (m *Menu) Display(derivedTotal decimal.Decimal) error {
	if m.price.GreaterThan(derivedTotal) {
		return errs.NewInvalidStateErrorWithCause("menu cannot be displayed",
			fmt.Errorf("price %s exceeds menu products total %s", m.price, derivedTotal))
	}

	m.displayed = true
	return nil
}

// Hide makes the menu invisible. Always succeeds.
func (m *Menu) Hide() {
	m.displayed = false
}

// HideIfOverpriced hides the menu when its price exceeds the derived total at
// current product prices. Reports whether the displayed flag flipped. This is
// the one-directional enforcement arm of the display invariant: a product
// price drop hides affected menus, a later price rise never re-displays them.
func (m *Menu) HideIfOverpriced(derivedTotal decimal.Decimal) bool {
	if !m.displayed || !m.price.GreaterThan(derivedTotal) {
		return false
	}

	m.displayed = false
	return true
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Menu) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}
	m.menuGroupID = menuGroupID
	return nil
}

func (m *Menu) setMenuProducts(menuProducts []MenuProduct) error {
	if len(menuProducts) == 0 {
		return errs.NewValueIsRequiredError("menuProducts")
	}
	m.menuProducts = make([]MenuProduct, len(menuProducts))
	copy(m.menuProducts, menuProducts)
	return nil
}
