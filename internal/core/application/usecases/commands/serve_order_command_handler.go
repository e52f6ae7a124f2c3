package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
)

// ServeOrderCommandHandler handles marking orders as served.
type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewServeOrderCommandHandler creates a handler for serve operations.
func NewServeOrderCommandHandler(uowFactory OrderUoWFactory) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the serve command and returns the served order.
func (h ServeOrderCommandHandler) Handle(ctx context.Context, cmd ServeOrderCommand) (*order.Order, error) {
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

	servedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = servedOrder.Serve(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, servedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return servedOrder, nil
}
