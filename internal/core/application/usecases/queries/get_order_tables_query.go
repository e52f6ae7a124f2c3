package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrGetOrderTablesQueryIsNotConstructed = errors.New(
		"GetOrderTablesQuery must be created via NewGetOrderTablesQuery constructor",
	)
)

// GetOrderTablesQuery retrieves all tables with their occupancy state.
type GetOrderTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderTablesQuery creates a query to retrieve all tables.
func NewGetOrderTablesQuery() GetOrderTablesQuery {
	return GetOrderTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTablesQueryIsNotConstructed)
}

// GetOrderTablesQueryResponse represents table occupancy in the read model.
type GetOrderTablesQueryResponse struct {
	ID             kernel.UUID
	Name           string
	NumberOfGuests int
	Occupied       bool
}
