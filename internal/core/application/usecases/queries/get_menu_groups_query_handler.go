package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuGroupsQueryHandler retrieves all menu groups from the database.
type GetMenuGroupsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuGroupsQueryHandler creates a handler for menu group retrieval queries.
func NewGetMenuGroupsQueryHandler(db *gorm.DB) GetMenuGroupsQueryHandler {
	return GetMenuGroupsQueryHandler{db: db}
}

// Handle executes the query to retrieve all menu groups sorted by name.
func (h GetMenuGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuGroupsQuery,
) ([]GetMenuGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menuGroups := make([]GetMenuGroupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM menu_groups
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var groupResp GetMenuGroupsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &groupResp.Name); err != nil {
			return nil, err
		}

		groupID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		groupResp.ID = groupID
		menuGroups = append(menuGroups, groupResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menuGroups, nil
}
