package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
)

// StartOrderDeliveryCommandHandler handles the hand-off of a served delivery
// order to its courier. Only delivery orders can enter Delivering; the
// aggregate rejects other channels.
type StartOrderDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderDeliveryCommandHandler creates a handler for delivery start operations.
func NewStartOrderDeliveryCommandHandler(uowFactory OrderUoWFactory) StartOrderDeliveryCommandHandler {
	return StartOrderDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the delivery start command and returns the order in
// Delivering status.
func (h StartOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd StartOrderDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveredOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = deliveredOrder.StartDelivery(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, deliveredOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return deliveredOrder, nil
}
