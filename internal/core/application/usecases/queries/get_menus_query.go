package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetMenusQueryIsNotConstructed = errors.New(
		"GetMenusQuery must be created via NewGetMenusQuery constructor",
	)
)

// GetMenusQuery retrieves all menus with their product lines.
type GetMenusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenusQuery creates a query to retrieve all menus.
func NewGetMenusQuery() GetMenusQuery {
	return GetMenusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetMenusQueryIsNotConstructed)
}

// GetMenusQueryResponse represents menu information in the read model,
// including the product quantities frozen at menu creation.
type GetMenusQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Price        decimal.Decimal
	MenuGroupID  kernel.UUID
	Displayed    bool
	MenuProducts []MenuProductResponse
}

// MenuProductResponse represents one product line of a menu in the read model.
type MenuProductResponse struct {
	ProductID kernel.UUID
	Quantity  int64
}
