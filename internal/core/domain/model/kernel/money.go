package kernel

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object that represents a non-negative monetary amount in
// the restaurant's single operating currency. It wraps shopspring/decimal to
// guarantee exact decimal arithmetic: prices and derived totals are never
// computed in floating point.
//
// Money carries price semantics, so its constructor rejects negative amounts.
// Line totals obtained from MulQuantity are raw decimals and may be negative,
// because eat-in orders are allowed to carry negative adjustment quantities.
//
// Example usage:
//
//	price, err := kernel.NewMoney(decimal.NewFromInt(16000))
//	if err != nil {
//	    // handle negative amount
//	}
//	total := price.MulQuantity(2) // decimal 32000
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
// Returns a ValueIsInvalidError if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromInt creates a Money value from an integer amount of minor units.
// Returns a ValueIsInvalidError if the amount is negative.
func NewMoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

// Zero returns the zero monetary amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// MulQuantity multiplies the amount by an integer quantity.
// The result is a raw decimal, not a Money, because quantities may be negative.
func (m Money) MulQuantity(quantity int64) decimal.Decimal {
	return m.amount.Mul(decimal.NewFromInt(quantity))
}

// GreaterThan reports whether m exceeds a raw decimal amount.
// Used to compare a menu price against its derived total.
func (m Money) GreaterThan(amount decimal.Decimal) bool {
	return m.amount.GreaterThan(amount)
}

// IsEqual compares two monetary amounts by value.
// Amounts that differ only in exponent, such as 1000 and 1000.00, are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
