package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCompleteOrderDeliveryCommandIsNotConstructed = errors.New(
		"CompleteOrderDeliveryCommand must be created via NewCompleteOrderDeliveryCommand constructor",
	)
)

// CompleteOrderDeliveryCommand represents a courier's report that a delivery
// order has reached the customer.
type CompleteOrderDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderDeliveryCommand creates a command to complete an order's delivery.
func NewCompleteOrderDeliveryCommand(orderID kernel.UUID) (CompleteOrderDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteOrderDeliveryCommand{}, err
	}

	return CompleteOrderDeliveryCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c CompleteOrderDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}
