package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
)

// CompleteOrderDeliveryCommandHandler handles the courier's delivered report.
type CompleteOrderDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderDeliveryCommandHandler creates a handler for delivery completion operations.
func NewCompleteOrderDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteOrderDeliveryCommandHandler {
	return CompleteOrderDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the delivery completion command and returns the order in
// Delivered status.
func (h CompleteOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteOrderDeliveryCommand) (*order.Order, error) {
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

	if err = deliveredOrder.CompleteDelivery(); err != nil {
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
