package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrGetMenuGroupsQueryIsNotConstructed = errors.New(
		"GetMenuGroupsQuery must be created via NewGetMenuGroupsQuery constructor",
	)
)

// GetMenuGroupsQuery retrieves all menu groups.
type GetMenuGroupsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuGroupsQuery creates a query to retrieve all menu groups.
func NewGetMenuGroupsQuery() GetMenuGroupsQuery {
	return GetMenuGroupsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuGroupsQueryIsNotConstructed)
}

// GetMenuGroupsQueryResponse represents menu group information in the read model.
type GetMenuGroupsQueryResponse struct {
	ID   kernel.UUID
	Name string
}
