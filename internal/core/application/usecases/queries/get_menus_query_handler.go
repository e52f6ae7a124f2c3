package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenusQueryHandler retrieves all menus from the database.
// Menus and their product lines are read in two queries and joined in memory,
// avoiding row multiplication on the menu columns.
type GetMenusQueryHandler struct {
	db *gorm.DB
}

// NewGetMenusQueryHandler creates a handler for menu retrieval queries.
func NewGetMenusQueryHandler(db *gorm.DB) GetMenusQueryHandler {
	return GetMenusQueryHandler{db: db}
}

// Handle executes the query to retrieve all menus with their product lines,
// sorted by name.
func (h GetMenusQueryHandler) Handle(
	ctx context.Context,
	query GetMenusQuery,
) ([]GetMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus, index, err := h.loadMenus(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.loadMenuProducts(ctx, menus, index); err != nil {
		return nil, err
	}

	return menus, nil
}

// loadMenus reads the menu rows and returns them along with an index from
// menu id to position in the result slice.
func (h GetMenusQueryHandler) loadMenus(ctx context.Context) ([]GetMenusQueryResponse, map[uuid.UUID]int, error) {
	menus := make([]GetMenusQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			menu_group_id,
			displayed
		FROM menus
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var menuResp GetMenusQueryResponse
		var id, menuGroupID uuid.UUID

		err = rows.Scan(
			&id,
			&menuResp.Name,
			&menuResp.Price,
			&menuGroupID,
			&menuResp.Displayed,
		)
		if err != nil {
			return nil, nil, err
		}

		menuID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		groupID, idErr := kernel.UUIDFromBytes(menuGroupID[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		menuResp.ID = menuID
		menuResp.MenuGroupID = groupID
		menuResp.MenuProducts = make([]MenuProductResponse, 0)
		index[id] = len(menus)
		menus = append(menus, menuResp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return menus, index, nil
}

// loadMenuProducts reads all product lines and attaches each to its menu.
func (h GetMenusQueryHandler) loadMenuProducts(
	ctx context.Context,
	menus []GetMenusQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_id,
			product_id,
			quantity
		FROM menu_products
		ORDER BY id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var lineResp MenuProductResponse
		var menuID, productID uuid.UUID

		if err = rows.Scan(&menuID, &productID, &lineResp.Quantity); err != nil {
			return err
		}

		pos, ok := index[menuID]
		if !ok {
			continue
		}

		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}
		lineResp.ProductID = prodID
		menus[pos].MenuProducts = append(menus[pos].MenuProducts, lineResp)
	}

	return rows.Err()
}
