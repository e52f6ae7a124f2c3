package queries

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves all orders with their line items.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse represents order information in the read model.
// Type and Status carry the wire representations ("DELIVERY", "WAITING", ...).
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	Type            string
	Status          string
	OrderedAt       time.Time
	DeliveryAddress string
	OrderTableID    *kernel.UUID
	LineItems       []OrderLineItemResponse
}

// OrderLineItemResponse represents one line of an order in the read model,
// with the price frozen at placement.
type OrderLineItemResponse struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    decimal.Decimal
}
