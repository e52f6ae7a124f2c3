package kernel_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(16000))

		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(16000)))
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.Amount().IsZero())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_MulQuantity(t *testing.T) {
	t.Run("should multiply by positive quantity", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromInt(16000)

		assert.True(t, m.MulQuantity(2).Equal(decimal.NewFromInt(32000)))
	})

	t.Run("should multiply by negative quantity into negative total", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromInt(19000)

		assert.True(t, m.MulQuantity(-1).Equal(decimal.NewFromInt(-19000)))
	})

	t.Run("should keep exact decimal fractions", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("0.10"))
		require.NoError(t, err)

		assert.True(t, m.MulQuantity(3).Equal(decimal.RequireFromString("0.30")))
	})
}

func TestMoney_Comparisons(t *testing.T) {
	t.Run("GreaterThan compares against a raw decimal", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromInt(33000)

		assert.True(t, m.GreaterThan(decimal.NewFromInt(32000)))
		assert.False(t, m.GreaterThan(decimal.NewFromInt(33000)))
	})

	t.Run("IsEqual ignores exponent differences", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.RequireFromString("1000"))
		b, _ := kernel.NewMoney(decimal.RequireFromString("1000.00"))

		assert.True(t, a.IsEqual(b))
	})

	t.Run("Zero is equal to zero", func(t *testing.T) {
		z, _ := kernel.NewMoneyFromInt(0)
		assert.True(t, kernel.Zero().IsEqual(z))
	})
}
