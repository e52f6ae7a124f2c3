package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrStartOrderDeliveryCommandIsNotConstructed = errors.New(
		"StartOrderDeliveryCommand must be created via NewStartOrderDeliveryCommand constructor",
	)
)

// StartOrderDeliveryCommand represents a request to hand a served delivery
// order to a courier.
type StartOrderDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderDeliveryCommand creates a command to start delivering an order.
func NewStartOrderDeliveryCommand(orderID kernel.UUID) (StartOrderDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartOrderDeliveryCommand{}, err
	}

	return StartOrderDeliveryCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to start delivering.
func (c StartOrderDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}
