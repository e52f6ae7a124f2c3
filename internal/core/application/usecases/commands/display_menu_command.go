package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrDisplayMenuCommandIsNotConstructed = errors.New(
		"DisplayMenuCommand must be created via NewDisplayMenuCommand constructor",
	)
)

// DisplayMenuCommand represents a request to make a menu visible to customers.
type DisplayMenuCommand struct { //nolint:recvcheck //using for validation
	menuID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDisplayMenuCommand creates a command to display a menu.
func NewDisplayMenuCommand(menuID kernel.UUID) (DisplayMenuCommand, error) {
	if err := menuID.Validate(); err != nil {
		return DisplayMenuCommand{}, err
	}

	return DisplayMenuCommand{
		menuID: menuID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DisplayMenuCommand) Validate() error {
	return c.guard.Validate(ErrDisplayMenuCommandIsNotConstructed)
}

// MenuID returns the identifier of the menu to display.
func (c DisplayMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}
