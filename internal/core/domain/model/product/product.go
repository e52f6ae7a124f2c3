// Package product provides the Product aggregate: a sellable catalog item with
// a mutable price. Menus reference products by id only; a product price change
// ripples into the displayed-state of every menu that contains it, which is
// orchestrated by the application layer.
package product

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a sellable catalog item.
//
// Product maintains these invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty (profanity screening happens in the application layer,
//     since it requires an external call)
//   - Price is non-negative, guaranteed by the kernel.Money value object
//
// The struct uses private fields to ensure all mutation goes through validated
// methods.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	isConstructed bool
}

// NewProduct creates a new Product with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (must be non-empty)
//   - price: non-negative unit price
//
// Returns a validation error if any parameter is invalid.
func NewProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
	); err != nil {
		return nil, err
	}

	product.price = price
	return product, nil
}

// RestoreProduct reconstructs a Product from persistence.
// The same construction invariants apply as in NewProduct.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	return NewProduct(id, name, price)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// ChangePrice replaces the product's unit price.
// Non-negativity is guaranteed by the Money value object; the cascade into
// dependent menus is the caller's responsibility.
func (p *Product) ChangePrice(price kernel.Money) {
	p.price = price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
