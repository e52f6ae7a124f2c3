package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Waiting ──> Accepted ──> Served ──┬──> Delivering ──> Delivered ──> Completed
//	                                  │         (delivery orders)
//	                                  └──────────────────────────────> Completed
//	                                       (takeout and eat-in orders)
//
// Waiting is the sole initial state, Completed is terminal, and no transition
// ever reverses. Status is a value object; each transition method returns the
// new status or an InvalidStateError, leaving the receiver unchanged.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Waiting is the initial status of a freshly placed order.
	Waiting

	// Accepted indicates the restaurant has taken the order on. For delivery
	// orders the courier dispatch has been requested at this point.
	Accepted

	// Served indicates the kitchen has fulfilled the order.
	Served

	// Delivering indicates a delivery order has left with the courier.
	Delivering

	// Delivered indicates a delivery order has reached the customer.
	Delivered

	// Completed is the terminal status; no further transitions are allowed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Waiting:       "WAITING",
		Accepted:      "ACCEPTED",
		Served:        "SERVED",
		Delivering:    "DELIVERING",
		Delivered:     "DELIVERED",
		Completed:     "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:    "WAITING",
		Accepted:   "ACCEPTED",
		Served:     "SERVED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Completed:  "COMPLETED",
	}
}

// Validate checks if the Status value is valid.
// UnknownStatus (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer; safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Accept transitions the status from Waiting to Accepted.
// Returns an InvalidStateError for any other current status.
func (s Status) Accept() (Status, error) {
	if s != Waiting {
		return 0, errs.NewInvalidStateErrorWithCause("order cannot be accepted",
			fmt.Errorf("status is %s, not %s", s, Waiting))
	}
	return Accepted, nil
}

// Serve transitions the status from Accepted to Served.
// Returns an InvalidStateError for any other current status.
func (s Status) Serve() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateErrorWithCause("order cannot be served",
			fmt.Errorf("status is %s, not %s", s, Accepted))
	}
	return Served, nil
}

// StartDelivery transitions the status from Served to Delivering.
// The delivery-only channel restriction is enforced by the Order aggregate.
func (s Status) StartDelivery() (Status, error) {
	if s != Served {
		return 0, errs.NewInvalidStateErrorWithCause("order delivery cannot be started",
			fmt.Errorf("status is %s, not %s", s, Served))
	}
	return Delivering, nil
}

// CompleteDelivery transitions the status from Delivering to Delivered.
// Returns an InvalidStateError for any other current status.
func (s Status) CompleteDelivery() (Status, error) {
	if s != Delivering {
		return 0, errs.NewInvalidStateErrorWithCause("order delivery cannot be completed",
			fmt.Errorf("status is %s, not %s", s, Delivering))
	}
	return Delivered, nil
}

// Complete transitions the status to Completed from the channel-dependent
// pre-terminal status: Delivered for delivery orders, Served otherwise.
func (s Status) Complete(orderType Type) (Status, error) {
	required := Served
	if orderType == Delivery {
		required = Delivered
	}

	if s != required {
		return 0, errs.NewInvalidStateErrorWithCause("order cannot be completed",
			fmt.Errorf("status is %s, not %s", s, required))
	}
	return Completed, nil
}
