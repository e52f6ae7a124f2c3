package http

import (
	"time"

	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the wire format of an error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductRequest is the wire format for creating a product.
// Price is a pointer so an absent field is distinguishable from an explicit
// zero; absence is rejected, zero is a valid price.
type ProductRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// PriceRequest is the wire format for price-change endpoints.
type PriceRequest struct {
	Price *decimal.Decimal `json:"price"`
}

// ProductResponse is the wire format of a product.
type ProductResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// MenuGroupRequest is the wire format for creating a menu group.
type MenuGroupRequest struct {
	Name string `json:"name"`
}

// MenuGroupResponse is the wire format of a menu group.
type MenuGroupResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// MenuProductRequest is the wire format of one product line in a menu request.
type MenuProductRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

// MenuRequest is the wire format for creating a menu.
type MenuRequest struct {
	Name         string               `json:"name"`
	Price        *decimal.Decimal     `json:"price"`
	MenuGroupID  uuid.UUID            `json:"menuGroupId"`
	Displayed    bool                 `json:"displayed"`
	MenuProducts []MenuProductRequest `json:"menuProducts"`
}

// MenuProductResponse is the wire format of one product line of a menu.
type MenuProductResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

// MenuResponse is the wire format of a menu.
type MenuResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Price        decimal.Decimal       `json:"price"`
	MenuGroupID  uuid.UUID             `json:"menuGroupId"`
	Displayed    bool                  `json:"displayed"`
	MenuProducts []MenuProductResponse `json:"menuProducts"`
}

// OrderTableRequest is the wire format for creating a table.
type OrderTableRequest struct {
	Name string `json:"name"`
}

// GuestsRequest is the wire format for the number-of-guests endpoint.
type GuestsRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

// OrderTableResponse is the wire format of a table.
type OrderTableResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NumberOfGuests int       `json:"numberOfGuests"`
	Occupied       bool      `json:"occupied"`
}

// OrderLineItemRequest is the wire format of one line in an order request.
// The price is the menu price the customer saw, checked against live state.
type OrderLineItemRequest struct {
	MenuID   uuid.UUID        `json:"menuId"`
	Quantity int64            `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

// OrderRequest is the wire format for placing an order.
type OrderRequest struct {
	Type            string                 `json:"type"`
	DeliveryAddress string                 `json:"deliveryAddress,omitempty"`
	OrderTableID    *uuid.UUID             `json:"orderTableId,omitempty"`
	LineItems       []OrderLineItemRequest `json:"orderLineItems"`
}

// OrderLineItemResponse is the wire format of one order line.
type OrderLineItemResponse struct {
	MenuID   uuid.UUID       `json:"menuId"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderResponse is the wire format of an order.
type OrderResponse struct {
	ID              uuid.UUID               `json:"id"`
	Type            string                  `json:"type"`
	Status          string                  `json:"status"`
	OrderedAt       time.Time               `json:"orderedAt"`
	DeliveryAddress string                  `json:"deliveryAddress,omitempty"`
	OrderTableID    *uuid.UUID              `json:"orderTableId,omitempty"`
	LineItems       []OrderLineItemResponse `json:"orderLineItems"`
}

func productToResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID().Bytes(),
		Name:  p.Name(),
		Price: p.Price().Amount(),
	}
}

func menuGroupToResponse(g *menugroup.MenuGroup) MenuGroupResponse {
	return MenuGroupResponse{
		ID:   g.ID().Bytes(),
		Name: g.Name(),
	}
}

func menuToResponse(m *menu.Menu) MenuResponse {
	menuProducts := make([]MenuProductResponse, 0, len(m.MenuProducts()))
	for _, mp := range m.MenuProducts() {
		menuProducts = append(menuProducts, MenuProductResponse{
			ProductID: mp.ProductID().Bytes(),
			Quantity:  mp.Quantity(),
		})
	}

	return MenuResponse{
		ID:           m.ID().Bytes(),
		Name:         m.Name(),
		Price:        m.Price().Amount(),
		MenuGroupID:  m.MenuGroupID().Bytes(),
		Displayed:    m.IsDisplayed(),
		MenuProducts: menuProducts,
	}
}

func tableToResponse(t *ordertable.OrderTable) OrderTableResponse {
	return OrderTableResponse{
		ID:             t.ID().Bytes(),
		Name:           t.Name(),
		NumberOfGuests: t.NumberOfGuests(),
		Occupied:       t.IsOccupied(),
	}
}

func orderToResponse(o *order.Order) OrderResponse {
	lineItems := make([]OrderLineItemResponse, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		lineItems = append(lineItems, OrderLineItemResponse{
			MenuID:   item.MenuID().Bytes(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
		})
	}

	var tableID *uuid.UUID
	if id := o.TableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	return OrderResponse{
		ID:              o.ID().Bytes(),
		Type:            o.Type().String(),
		Status:          o.Status().String(),
		OrderedAt:       o.OrderedAt(),
		DeliveryAddress: o.DeliveryAddress(),
		OrderTableID:    tableID,
		LineItems:       lineItems,
	}
}

func menuQueryToResponse(resp queries.GetMenusQueryResponse) MenuResponse {
	menuProducts := make([]MenuProductResponse, 0, len(resp.MenuProducts))
	for _, mp := range resp.MenuProducts {
		menuProducts = append(menuProducts, MenuProductResponse{
			ProductID: mp.ProductID.Bytes(),
			Quantity:  mp.Quantity,
		})
	}

	return MenuResponse{
		ID:           resp.ID.Bytes(),
		Name:         resp.Name,
		Price:        resp.Price,
		MenuGroupID:  resp.MenuGroupID.Bytes(),
		Displayed:    resp.Displayed,
		MenuProducts: menuProducts,
	}
}

func orderQueryToResponse(resp queries.GetOrdersQueryResponse) OrderResponse {
	lineItems := make([]OrderLineItemResponse, 0, len(resp.LineItems))
	for _, item := range resp.LineItems {
		lineItems = append(lineItems, OrderLineItemResponse{
			MenuID:   item.MenuID.Bytes(),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	var tableID *uuid.UUID
	if resp.OrderTableID != nil {
		raw := resp.OrderTableID.Bytes()
		tableID = &raw
	}

	return OrderResponse{
		ID:              resp.ID.Bytes(),
		Type:            resp.Type,
		Status:          resp.Status,
		OrderedAt:       resp.OrderedAt,
		DeliveryAddress: resp.DeliveryAddress,
		OrderTableID:    tableID,
		LineItems:       lineItems,
	}
}
