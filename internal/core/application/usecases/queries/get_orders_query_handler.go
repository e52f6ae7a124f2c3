package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves all orders from the database.
// Orders and their line items are read in two queries and joined in memory.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order retrieval queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their line items,
// sorted by placement time.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.loadLineItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersQueryHandler) loadOrders(ctx context.Context) ([]GetOrdersQueryResponse, map[uuid.UUID]int, error) {
	orders := make([]GetOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			status,
			ordered_at,
			delivery_address,
			order_table_id
		FROM orders
		ORDER BY ordered_at
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersQueryResponse
		var id uuid.UUID
		var orderType, status int
		var tableID *uuid.UUID

		err = rows.Scan(
			&id,
			&orderType,
			&status,
			&orderResp.OrderedAt,
			&orderResp.DeliveryAddress,
			&tableID,
		)
		if err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Type = order.Type(orderType).String()
		orderResp.Status = order.Status(status).String()

		if tableID != nil {
			tID, idErr := kernel.UUIDFromBytes((*tableID)[:])
			if idErr != nil {
				return nil, nil, idErr
			}
			orderResp.OrderTableID = &tID
		}

		orderResp.LineItems = make([]OrderLineItemResponse, 0)
		index[id] = len(orders)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

func (h GetOrdersQueryHandler) loadLineItems(
	ctx context.Context,
	orders []GetOrdersQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_id,
			quantity,
			price
		FROM order_line_items
		ORDER BY id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp OrderLineItemResponse
		var orderID, menuID uuid.UUID

		if err = rows.Scan(&orderID, &menuID, &itemResp.Quantity, &itemResp.Price); err != nil {
			return err
		}

		pos, ok := index[orderID]
		if !ok {
			continue
		}

		mID, idErr := kernel.UUIDFromBytes(menuID[:])
		if idErr != nil {
			return idErr
		}
		itemResp.MenuID = mID
		orders[pos].LineItems = append(orders[pos].LineItems, itemResp)
	}

	return rows.Err()
}
