package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler handles order completion.
//
// Completing an eat-in order may free its table: after the order's terminal
// status is written, the table is cleared only when no other uncompleted
// order references it. Both writes happen in one transaction, so a table is
// never freed while an open order still points at it.
type CompleteOrderCommandHandler struct {
	uowFactory TableOrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion operations.
func NewCompleteOrderCommandHandler(uowFactory TableOrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the completion command and returns the completed order.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
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

	completedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = completedOrder.Complete(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, completedOrder); err != nil {
		return nil, err
	}

	if completedOrder.Type() == order.EatIn && completedOrder.TableID() != nil {
		if err = h.freeTableIfIdle(ctx, uow, completedOrder); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return completedOrder, nil
}

// freeTableIfIdle clears the table of an eat-in order when the order just
// completed was the last open order at that table. The open-order check runs
// after the completed order's update, so the just-completed order does not
// count against its own table.
func (h CompleteOrderCommandHandler) freeTableIfIdle(ctx context.Context, uow TableOrderUoW, completedOrder *order.Order) error {
	hasOpenOrders, err := uow.OrderRepository().ExistsByTableAndStatusNot(ctx, *completedOrder.TableID(), order.Completed)
	if err != nil {
		return err
	}
	if hasOpenOrders {
		return nil
	}

	table, err := uow.OrderTableRepository().Get(ctx, *completedOrder.TableID())
	if err != nil {
		return err
	}

	table.Clear()
	return uow.OrderTableRepository().Update(ctx, table)
}
