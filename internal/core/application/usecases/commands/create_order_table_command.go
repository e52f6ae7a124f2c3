package commands

import (
	"errors"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCreateOrderTableCommandIsNotConstructed = errors.New(
		"CreateOrderTableCommand must be created via NewCreateOrderTableCommand constructor",
	)
)

// CreateOrderTableCommand represents a request to register a physical table.
type CreateOrderTableCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateOrderTableCommand creates a command to register a new order table.
// Validates that the name is non-empty.
func NewCreateOrderTableCommand(name string) (CreateOrderTableCommand, error) {
	if name == "" {
		return CreateOrderTableCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateOrderTableCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTableCommandIsNotConstructed)
}

// Name returns the requested table name.
func (c CreateOrderTableCommand) Name() string {
	return c.name
}
