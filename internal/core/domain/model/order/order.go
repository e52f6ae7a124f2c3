package order

import (
	"errors"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through one of the channel factory functions or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via one of the New*Order constructors")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from placement through fulfillment to
// completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a known channel
//   - Must carry at least one line item
//   - Quantities are non-negative except on eat-in orders
//   - Delivery orders carry a non-empty delivery address; eat-in orders carry
//     the id of the table they were placed against; no other channel carries
//     either field
//   - Status transitions follow the state machine in Status and are monotonic
//
// Channel-specific required fields are enforced by having one factory function
// per channel (NewDeliveryOrder, NewTakeoutOrder, NewEatInOrder), so an order
// with an illegal field combination cannot be constructed.
type Order struct {
	id              kernel.UUID
	orderType       Type
	status          Status
	orderedAt       time.Time
	lineItems       []LineItem
	deliveryAddress string
	tableID         *kernel.UUID

	isConstructed bool
}

// NewDeliveryOrder creates a Waiting delivery order.
// The delivery address must be non-empty; all quantities must be non-negative.
func NewDeliveryOrder(id kernel.UUID, orderedAt time.Time, lineItems []LineItem, deliveryAddress string) (*Order, error) {
	if deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}

	order, err := newOrder(id, Delivery, orderedAt, lineItems)
	if err != nil {
		return nil, err
	}

	order.deliveryAddress = deliveryAddress
	return order, nil
}

// NewTakeoutOrder creates a Waiting takeout order.
// All quantities must be non-negative.
func NewTakeoutOrder(id kernel.UUID, orderedAt time.Time, lineItems []LineItem) (*Order, error) {
	return newOrder(id, Takeout, orderedAt, lineItems)
}

// NewEatInOrder creates a Waiting eat-in order bound to a table.
// The caller must have verified that the table exists and is occupied; only
// the table id is captured here. Negative quantities are permitted on this
// channel, representing void/adjustment lines.
func NewEatInOrder(id kernel.UUID, orderedAt time.Time, lineItems []LineItem, tableID kernel.UUID) (*Order, error) {
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	order, err := newOrder(id, EatIn, orderedAt, lineItems)
	if err != nil {
		return nil, err
	}

	order.tableID = &tableID
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation-time cross-aggregate checks. The structural invariants still apply.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	status Status,
	orderedAt time.Time,
	lineItems []LineItem,
	deliveryAddress string,
	tableID *kernel.UUID,
) (*Order, error) {
	order, err := newOrder(id, orderType, orderedAt, lineItems)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	order.deliveryAddress = deliveryAddress
	order.tableID = tableID
	return order, nil
}

func newOrder(id kernel.UUID, orderType Type, orderedAt time.Time, lineItems []LineItem) (*Order, error) {
	order := &Order{
		orderType:     orderType,
		status:        Waiting,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		orderType.Validate(),
		order.setOrderedAt(orderedAt),
		order.setLineItems(orderType, lineItems),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Type returns the order channel.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderedAt returns the placement time, set once at creation.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// LineItems returns a copy of the order's frozen line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// DeliveryAddress returns the delivery address.
// Empty for non-delivery orders.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TableID returns the id of the table the order was placed against.
// Nil for non-eat-in orders.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// Accept moves the order from Waiting to Accepted.
// For delivery orders the caller requests courier dispatch before invoking
// this, so a dispatch failure never leaves an accepted order behind.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Serve moves the order from Accepted to Served.
func (o *Order) Serve() error {
	newStatus, err := o.status.Serve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartDelivery moves a delivery order from Served to Delivering.
// Fails with an InvalidStateError on any other channel.
func (o *Order) StartDelivery() error {
	if o.orderType != Delivery {
		return errs.NewInvalidStateErrorWithCause("order delivery cannot be started",
			fmt.Errorf("order type is %s, not %s", o.orderType, Delivery))
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteDelivery moves the order from Delivering to Delivered.
func (o *Order) CompleteDelivery() error {
	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete moves the order into the terminal Completed status, from Delivered
// for delivery orders and from Served for takeout and eat-in orders. Freeing
// the table of an eat-in order is a cross-aggregate concern handled by the
// application layer after this succeeds.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete(o.orderType)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// DispatchAmount returns the amount reported to the courier service when a
// delivery order is accepted. Only the last line item's total is kept, not the
// sum across items; downstream billing expects this value as-is.
func (o *Order) DispatchAmount() decimal.Decimal {
	amount := decimal.Zero
	for _, item := range o.lineItems {
		amount = item.Total()
	}
	return amount
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedAt")
	}
	o.orderedAt = orderedAt
	return nil
}

func (o *Order) setLineItems(orderType Type, lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("orderLineItems")
	}

	for _, item := range lineItems {
		// Eat-in orders may carry negative void/adjustment lines.
		if orderType != EatIn && item.Quantity() < 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is negative for %s order", item.Quantity(), orderType))
		}
	}

	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}
