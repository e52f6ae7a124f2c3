package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrClearOrderTableCommandIsNotConstructed = errors.New(
		"ClearOrderTableCommand must be created via NewClearOrderTableCommand constructor",
	)
)

// ClearOrderTableCommand represents a request to free a table after a dine-in
// session. A table with any open order cannot be cleared.
type ClearOrderTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearOrderTableCommand creates a command to clear a table.
func NewClearOrderTableCommand(tableID kernel.UUID) (ClearOrderTableCommand, error) {
	if err := tableID.Validate(); err != nil {
		return ClearOrderTableCommand{}, err
	}

	return ClearOrderTableCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrClearOrderTableCommandIsNotConstructed)
}

// TableID returns the identifier of the table to clear.
func (c ClearOrderTableCommand) TableID() kernel.UUID {
	return c.tableID
}
