package commands

import (
	"errors"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCreateMenuGroupCommandIsNotConstructed = errors.New(
		"CreateMenuGroupCommand must be created via NewCreateMenuGroupCommand constructor",
	)
)

// CreateMenuGroupCommand represents a request to add a menu grouping label.
type CreateMenuGroupCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateMenuGroupCommand creates a command to register a new menu group.
// Validates that the name is non-empty.
func NewCreateMenuGroupCommand(name string) (CreateMenuGroupCommand, error) {
	if name == "" {
		return CreateMenuGroupCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateMenuGroupCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuGroupCommandIsNotConstructed)
}

// Name returns the requested menu group name.
func (c CreateMenuGroupCommand) Name() string {
	return c.name
}
