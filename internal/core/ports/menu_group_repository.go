package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
)

// MenuGroupRepository defines the persistence contract for menu group aggregates.
// Menu groups are immutable after creation, so there is no Update.
type MenuGroupRepository interface {
	// Add persists a new menu group aggregate to storage.
	Add(ctx context.Context, aggregate *menugroup.MenuGroup) error

	// Get retrieves a menu group aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error)

	// GetAll retrieves all menu group aggregates.
	GetAll(ctx context.Context) ([]*menugroup.MenuGroup, error)
}
