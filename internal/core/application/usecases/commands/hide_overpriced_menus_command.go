package commands

import (
	"errors"

	"kitchenpos/internal/pkg/guard"
)

var (
	ErrHideOverpricedMenusCommandIsNotConstructed = errors.New(
		"HideOverpricedMenusCommand must be created via NewHideOverpricedMenusCommand constructor",
	)
)

// HideOverpricedMenusCommand represents a sweep over all displayed menus,
// hiding any whose price exceeds its derived total at current product prices.
// The product price-change cascade already enforces this invariant inline;
// the sweep additionally covers drift introduced out of band, for example by
// direct data fixes. Issued by the menu price audit job.
type HideOverpricedMenusCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewHideOverpricedMenusCommand creates a parameterless audit sweep command.
func NewHideOverpricedMenusCommand() HideOverpricedMenusCommand {
	return HideOverpricedMenusCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c HideOverpricedMenusCommand) Validate() error {
	return c.guard.Validate(ErrHideOverpricedMenusCommandIsNotConstructed)
}
