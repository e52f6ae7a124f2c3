package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/ports"
)

// AcceptOrderCommandHandler handles order acceptance.
//
// For delivery orders the courier request goes out before the order
// transitions: if the dispatcher call fails the order stays Waiting and the
// transaction rolls back, so no accepted order exists without a courier on
// the way.
type AcceptOrderCommandHandler struct {
	uowFactory         OrderUoWFactory
	deliveryDispatcher ports.DeliveryDispatcher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance operations.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, deliveryDispatcher ports.DeliveryDispatcher) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory:         uowFactory,
		deliveryDispatcher: deliveryDispatcher,
	}
}

// Handle processes the acceptance command and returns the accepted order.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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

	acceptedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Reject an impossible transition before contacting the dispatcher, so a
	// repeated accept never requests a second courier.
	if _, err = acceptedOrder.Status().Accept(); err != nil {
		return nil, err
	}

	if acceptedOrder.Type() == order.Delivery {
		err = h.deliveryDispatcher.RequestDelivery(ctx,
			acceptedOrder.ID(), acceptedOrder.DispatchAmount(), acceptedOrder.DeliveryAddress())
		if err != nil {
			return nil, fmt.Errorf("delivery dispatch failed: %w", err)
		}
	}

	if err = acceptedOrder.Accept(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, acceptedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return acceptedOrder, nil
}
