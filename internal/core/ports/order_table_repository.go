package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"
)

// OrderTableRepository defines the persistence contract for order table aggregates.
type OrderTableRepository interface {
	// Add persists a new order table aggregate to storage.
	Add(ctx context.Context, aggregate *ordertable.OrderTable) error

	// Update persists changes to an existing order table aggregate.
	Update(ctx context.Context, aggregate *ordertable.OrderTable) error

	// Get retrieves an order table aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error)

	// GetAll retrieves all order table aggregates.
	GetAll(ctx context.Context) ([]*ordertable.OrderTable, error)
}
