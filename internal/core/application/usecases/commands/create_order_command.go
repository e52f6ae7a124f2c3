package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place an order on one of the
// three channels. Each line item carries the menu price the customer saw,
// which the handler checks against the live menu price.
//
// Example:
//
//	item, _ := order.NewLineItem(menuID, 2, menuPrice)
//	cmd, err := NewCreateOrderCommand(order.Delivery, []order.LineItem{item},
//	    "221B Baker Street", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderType       order.Type
	lineItems       []order.LineItem
	deliveryAddress string
	tableID         *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Validates the channel, that line items are present, and that the
// channel-specific fields are supplied: a delivery address for delivery
// orders, a table id for eat-in orders. Menu existence, display state, price
// drift, and table occupancy are checked in the handler against live state.
func NewCreateOrderCommand(
	orderType order.Type,
	lineItems []order.LineItem,
	deliveryAddress string,
	tableID *kernel.UUID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderType.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(lineItems) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("orderLineItems")
	}
	if orderType == order.Delivery && deliveryAddress == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if orderType == order.EatIn {
		if tableID == nil {
			return CreateOrderCommand{}, errs.NewValueIsRequiredError("orderTableId")
		}
		if err := tableID.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	orderCommand.orderType = orderType
	orderCommand.lineItems = make([]order.LineItem, len(lineItems))
	copy(orderCommand.lineItems, lineItems)
	orderCommand.deliveryAddress = deliveryAddress
	orderCommand.tableID = tableID
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderType returns the requested order channel.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// LineItems returns the requested line items with their frozen prices.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	items := make([]order.LineItem, len(c.lineItems))
	copy(items, c.lineItems)
	return items
}

// DeliveryAddress returns the delivery address. Empty for non-delivery orders.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// TableID returns the table reference. Nil for non-eat-in orders.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}
