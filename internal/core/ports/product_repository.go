// Package ports defines the persistence and external-collaborator contracts
// the application core depends on. The core is written purely against these
// interfaces; adapters supply GORM-backed repositories and HTTP clients.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves all product aggregates.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetAllByIDs retrieves the products whose ids appear in the given set.
	// Missing ids are skipped, not errors; callers validate completeness.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
