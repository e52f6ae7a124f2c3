package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrChangeNumberOfGuestsCommandIsNotConstructed = errors.New(
		"ChangeNumberOfGuestsCommand must be created via NewChangeNumberOfGuestsCommand constructor",
	)
)

// ChangeNumberOfGuestsCommand represents a request to update the guest count
// of an occupied table.
type ChangeNumberOfGuestsCommand struct { //nolint:recvcheck //using for validation
	tableID        kernel.UUID
	numberOfGuests int

	guard guard.ConstructorGuard
}

// NewChangeNumberOfGuestsCommand creates a command to change a table's guest count.
// Validates that the table id is valid and the count is non-negative.
func NewChangeNumberOfGuestsCommand(tableID kernel.UUID, numberOfGuests int) (ChangeNumberOfGuestsCommand, error) {
	if err := tableID.Validate(); err != nil {
		return ChangeNumberOfGuestsCommand{}, err
	}
	if numberOfGuests < 0 {
		return ChangeNumberOfGuestsCommand{}, errs.NewValueIsOutOfRangeError("numberOfGuests", numberOfGuests, 0, "unbounded")
	}

	return ChangeNumberOfGuestsCommand{
		tableID:        tableID,
		numberOfGuests: numberOfGuests,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeNumberOfGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeNumberOfGuestsCommandIsNotConstructed)
}

// TableID returns the identifier of the table.
func (c ChangeNumberOfGuestsCommand) TableID() kernel.UUID {
	return c.tableID
}

// NumberOfGuests returns the new guest count.
func (c ChangeNumberOfGuestsCommand) NumberOfGuests() int {
	return c.numberOfGuests
}
