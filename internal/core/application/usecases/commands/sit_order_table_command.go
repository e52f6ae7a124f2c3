package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrSitOrderTableCommandIsNotConstructed = errors.New(
		"SitOrderTableCommand must be created via NewSitOrderTableCommand constructor",
	)
)

// SitOrderTableCommand represents a request to seat guests at a table.
// Seating is idempotent.
type SitOrderTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSitOrderTableCommand creates a command to seat a table.
func NewSitOrderTableCommand(tableID kernel.UUID) (SitOrderTableCommand, error) {
	if err := tableID.Validate(); err != nil {
		return SitOrderTableCommand{}, err
	}

	return SitOrderTableCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SitOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrSitOrderTableCommandIsNotConstructed)
}

// TableID returns the identifier of the table to seat.
func (c SitOrderTableCommand) TableID() kernel.UUID {
	return c.tableID
}
