package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ProfanityChecker screens customer-facing names through an external
// text-check service. Called for product and menu names at creation time;
// a failure of the call fails the create operation, there is no fallback.
type ProfanityChecker interface {
	ContainsProfanity(ctx context.Context, text string) (bool, error)
}

// DeliveryDispatcher requests a courier for an accepted delivery order.
// Called exactly once per delivery order, synchronously, after all validation
// but before the status write. Fire-and-forget from the core's perspective:
// no retry, no result beyond the error.
type DeliveryDispatcher interface {
	RequestDelivery(ctx context.Context, orderID kernel.UUID, amount decimal.Decimal, deliveryAddress string) error
}
