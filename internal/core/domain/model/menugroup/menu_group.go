// Package menugroup provides the MenuGroup aggregate, a pure grouping label for
// menus. Menu groups are immutable after creation.
package menugroup

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

// ErrMenuGroupIsNotConstructed is returned when a MenuGroup instance was not
// created through the NewMenuGroup or RestoreMenuGroup factory functions.
var ErrMenuGroupIsNotConstructed = errors.New("MenuGroup must be created via NewMenuGroup constructor")

// MenuGroup is an immutable grouping label under which menus are organized.
type MenuGroup struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewMenuGroup creates a new MenuGroup with validation.
// The name must be non-empty.
func NewMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	group := &MenuGroup{
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	group.id = id
	group.name = name
	return group, nil
}

// RestoreMenuGroup reconstructs a MenuGroup from persistence.
func RestoreMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	return NewMenuGroup(id, name)
}

// Validate ensures the MenuGroup instance was properly constructed.
func (g *MenuGroup) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrMenuGroupIsNotConstructed
	}

	return nil
}

// IsEqual compares two menu groups by their unique identifiers.
func (g *MenuGroup) IsEqual(other *MenuGroup) bool {
	return other != nil && g.id.IsEqual(other.id)
}

// ID returns the menu group's unique identifier.
func (g *MenuGroup) ID() kernel.UUID {
	return g.id
}

// Name returns the menu group's display name.
func (g *MenuGroup) Name() string {
	return g.name
}
