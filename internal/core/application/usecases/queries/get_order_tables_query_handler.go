package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTablesQueryHandler retrieves all tables from the database.
type GetOrderTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTablesQueryHandler creates a handler for table retrieval queries.
func NewGetOrderTablesQueryHandler(db *gorm.DB) GetOrderTablesQueryHandler {
	return GetOrderTablesQueryHandler{db: db}
}

// Handle executes the query to retrieve all tables sorted by name.
func (h GetOrderTablesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTablesQuery,
) ([]GetOrderTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetOrderTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			number_of_guests,
			occupied
		FROM order_tables
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tableResp GetOrderTablesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&tableResp.Name,
			&tableResp.NumberOfGuests,
			&tableResp.Occupied,
		)
		if err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		tableResp.ID = tableID
		tables = append(tables, tableResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
