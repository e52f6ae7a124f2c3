package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu aggregates.
type MenuRepository interface {
	// Add persists a new menu aggregate, including its menu products.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Update persists changes to an existing menu aggregate.
	Update(ctx context.Context, aggregate *menu.Menu) error

	// Get retrieves a menu aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetAll retrieves all menu aggregates.
	GetAll(ctx context.Context) ([]*menu.Menu, error)

	// GetAllByIDs retrieves the menus whose ids appear in the given set.
	// Missing ids are skipped, not errors; callers validate completeness.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)

	// GetAllByProductID retrieves every menu containing the given product.
	// Used by the product price-change cascade.
	GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error)
}
