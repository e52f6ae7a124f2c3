// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order row owns its order_line_items child rows; line
// items are frozen at placement, only the order's status changes afterwards.
package orderrepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Type            int                `gorm:"not null"`
	Status          int                `gorm:"not null;index"`
	OrderedAt       time.Time          `gorm:"not null"`
	DeliveryAddress string             `gorm:"type:varchar(512)"`
	OrderTableID    *uuid.UUID         `gorm:"type:uuid;index"`
	LineItems       []OrderLineItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineItemDTO represents one frozen line of an order.
type OrderLineItemDTO struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuID   uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity int64           `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(19,2);not null"`
}

// TableName specifies the database table name for order line items.
func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	var tableID *uuid.UUID
	if id := order.TableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	lineItems := make([]OrderLineItemDTO, 0, len(order.LineItems()))
	for _, item := range order.LineItems() {
		lineItems = append(lineItems, OrderLineItemDTO{
			OrderID:  order.ID().Bytes(),
			MenuID:   item.MenuID().Bytes(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
		})
	}

	return OrderDTO{
		ID:              order.ID().Bytes(),
		Type:            int(order.Type()),
		Status:          int(order.Status()),
		OrderedAt:       order.OrderedAt(),
		DeliveryAddress: order.DeliveryAddress(),
		OrderTableID:    tableID,
		LineItems:       lineItems,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.OrderTableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.OrderTableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}

		tableID = &tID
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		menuID, idErr := kernel.UUIDFromBytes(itemDTO.MenuID[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewLineItem(menuID, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.Type),
		order.Status(dto.Status),
		dto.OrderedAt,
		lineItems,
		dto.DeliveryAddress,
		tableID,
	)
}
