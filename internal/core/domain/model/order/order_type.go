package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Type represents the order channel. The channel determines which fields are
// required at creation and which branch of the status state machine applies.
type Type int

const (
	// UnknownType represents an invalid or undefined order channel.
	UnknownType Type = iota

	// Delivery orders are dispatched to an external courier service and pass
	// through the Delivering and Delivered statuses.
	Delivery

	// Takeout orders are handed over at the counter and complete from Served.
	Takeout

	// EatIn orders are bound to an occupied table and complete from Served.
	// They are the only channel permitted to carry negative line-item
	// quantities, used for void/adjustment lines.
	EatIn
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "UNKNOWN",
		Delivery:    "DELIVERY",
		Takeout:     "TAKEOUT",
		EatIn:       "EAT_IN",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		Delivery: "DELIVERY",
		Takeout:  "TAKEOUT",
		EatIn:    "EAT_IN",
	}
}

// TypeFromString parses an order channel from its wire representation.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the Type value is a known order channel.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire representation of the order channel.
// Implements fmt.Stringer; safe on any Type value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
