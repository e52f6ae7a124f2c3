// Package ordertable provides the OrderTable aggregate: a physical dine-in
// table with occupancy and guest-count state.
//
// Key business rules:
//   - Tables start unoccupied with zero guests
//   - Seating is idempotent; re-seating an occupied table has no further effect
//   - The guest count can only change while the table is occupied
//   - numberOfGuests > 0 implies occupied
//
// Clearing a table additionally requires that no open order references it,
// which spans aggregates and is checked in the application layer.
package ordertable

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

// ErrOrderTableIsNotConstructed is returned when an OrderTable instance was not
// created through the NewOrderTable or RestoreOrderTable factory functions.
var ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable constructor")

// OrderTable represents a physical table and its dine-in session state.
type OrderTable struct {
	id             kernel.UUID
	name           string
	occupied       bool
	numberOfGuests int

	isConstructed bool
}

// NewOrderTable creates a new, unoccupied OrderTable with zero guests.
// The name must be non-empty.
func NewOrderTable(id kernel.UUID, name string) (*OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &OrderTable{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreOrderTable reconstructs an OrderTable from persistence.
func RestoreOrderTable(id kernel.UUID, name string, occupied bool, numberOfGuests int) (*OrderTable, error) {
	table, err := NewOrderTable(id, name)
	if err != nil {
		return nil, err
	}

	table.occupied = occupied
	table.numberOfGuests = numberOfGuests
	return table, nil
}

// Validate ensures the OrderTable instance was properly constructed.
func (t *OrderTable) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrOrderTableIsNotConstructed
	}

	return nil
}

// IsEqual compares two order tables by their unique identifiers.
func (t *OrderTable) IsEqual(other *OrderTable) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the table's unique identifier.
func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

// Name returns the table's display name.
func (t *OrderTable) Name() string {
	return t.name
}

// IsOccupied reports whether the table is currently assigned to a dine-in session.
func (t *OrderTable) IsOccupied() bool {
	return t.occupied
}

// NumberOfGuests returns the number of guests seated at the table.
func (t *OrderTable) NumberOfGuests() int {
	return t.numberOfGuests
}

// Sit marks the table as occupied. Idempotent: seating an already occupied
// table leaves the guest count untouched.
func (t *OrderTable) Sit() {
	t.occupied = true
}

// Clear resets the table to unoccupied with zero guests.
// The caller must first verify that no non-completed order references the table.
func (t *OrderTable) Clear() {
	t.occupied = false
	t.numberOfGuests = 0
}

// ChangeNumberOfGuests updates the guest count.
// Fails with a validation error for negative counts and with an
// InvalidStateError when the table is not occupied.
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsOutOfRangeError("numberOfGuests", numberOfGuests, 0, "unbounded")
	}
	if !t.occupied {
		return errs.NewInvalidStateError("order table is not occupied")
	}

	t.numberOfGuests = numberOfGuests
	return nil
}
