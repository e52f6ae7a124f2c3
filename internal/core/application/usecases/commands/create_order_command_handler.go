package commands

import (
	"context"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement on all three channels.
//
// Validation runs against live catalog state: every referenced menu must
// exist and be displayed, and each line item's frozen price must equal the
// menu's current price. Eat-in orders additionally require their table to be
// occupied. Line item prices are frozen at placement, so later menu reprices
// do not affect existing orders.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order placement command and returns the created order
// in Waiting status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	lookup, err := h.loadMenuLookup(ctx, uow, cmd.LineItems())
	if err != nil {
		return nil, err
	}

	for _, item := range cmd.LineItems() {
		orderedMenu, ok := lookup[item.MenuID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menuId", item.MenuID())
		}
		if !orderedMenu.IsDisplayed() {
			return nil, errs.NewInvalidStateErrorWithCause("menu is not displayed",
				fmt.Errorf("menu %s cannot be ordered", orderedMenu.ID()))
		}
		if !item.Price().IsEqual(orderedMenu.Price()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("price",
				fmt.Errorf("%s does not match menu price %s", item.Price(), orderedMenu.Price()))
		}
	}

	var newOrder *order.Order
	switch cmd.OrderType() {
	case order.Delivery:
		newOrder, err = order.NewDeliveryOrder(kernel.NewUUID(), time.Now(), cmd.LineItems(), cmd.DeliveryAddress())
	case order.Takeout:
		newOrder, err = order.NewTakeoutOrder(kernel.NewUUID(), time.Now(), cmd.LineItems())
	case order.EatIn:
		var table, tableErr = uow.OrderTableRepository().Get(ctx, *cmd.TableID())
		if tableErr != nil {
			return nil, tableErr
		}
		if !table.IsOccupied() {
			return nil, errs.NewInvalidStateErrorWithCause("order table is not occupied",
				fmt.Errorf("eat-in order cannot be placed at table %s", table.ID()))
		}
		newOrder, err = order.NewEatInOrder(kernel.NewUUID(), time.Now(), cmd.LineItems(), table.ID())
	default:
		return nil, errs.NewValueIsInvalidError("orderType")
	}
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// loadMenuLookup fetches every distinct menu referenced by the line items.
// Missing ids are simply absent from the map; the caller reports them.
func (h CreateOrderCommandHandler) loadMenuLookup(
	ctx context.Context,
	uow CreateOrderUoW,
	lineItems []order.LineItem,
) (map[kernel.UUID]*menu.Menu, error) {
	seen := make(map[kernel.UUID]struct{}, len(lineItems))
	ids := make([]kernel.UUID, 0, len(lineItems))
	for _, item := range lineItems {
		if _, ok := seen[item.MenuID()]; ok {
			continue
		}
		seen[item.MenuID()] = struct{}{}
		ids = append(ids, item.MenuID())
	}

	menus, err := uow.MenuRepository().GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lookup := make(map[kernel.UUID]*menu.Menu, len(menus))
	for _, m := range menus {
		lookup[m.ID()] = m
	}
	return lookup, nil
}
