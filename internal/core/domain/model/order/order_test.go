package order_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func mustLineItem(t *testing.T, quantity int64, price int64) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), quantity, mustMoney(t, price))
	require.NoError(t, err)
	return item
}

func TestNewDeliveryOrder(t *testing.T) {
	validID := kernel.NewUUID()
	orderedAt := time.Now()

	t.Run("should create valid delivery order", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 2, 16000)}

		o, err := order.NewDeliveryOrder(validID, orderedAt, items, "221B Baker Street")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, order.Delivery, o.Type())
		assert.Equal(t, order.Waiting, o.Status())
		assert.Equal(t, "221B Baker Street", o.DeliveryAddress())
		assert.Nil(t, o.TableID())
		assert.Len(t, o.LineItems(), 1)
	})

	t.Run("should fail with empty delivery address", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1, 16000)}

		o, err := order.NewDeliveryOrder(validID, orderedAt, items, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with no line items", func(t *testing.T) {
		o, err := order.NewDeliveryOrder(validID, orderedAt, nil, "221B Baker Street")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, -1, 16000)}

		o, err := order.NewDeliveryOrder(validID, orderedAt, items, "221B Baker Street")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero ordered-at time", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1, 16000)}

		o, err := order.NewDeliveryOrder(validID, time.Time{}, items, "221B Baker Street")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewTakeoutOrder(t *testing.T) {
	t.Run("should create valid takeout order", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1, 9000)}

		o, err := order.NewTakeoutOrder(kernel.NewUUID(), time.Now(), items)

		require.NoError(t, err)
		assert.Equal(t, order.Takeout, o.Type())
		assert.Empty(t, o.DeliveryAddress())
		assert.Nil(t, o.TableID())
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, -2, 9000)}

		o, err := order.NewTakeoutOrder(kernel.NewUUID(), time.Now(), items)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewEatInOrder(t *testing.T) {
	t.Run("should create valid eat-in order bound to table", func(t *testing.T) {
		tableID := kernel.NewUUID()
		items := []order.LineItem{mustLineItem(t, 3, 12000)}

		o, err := order.NewEatInOrder(kernel.NewUUID(), time.Now(), items, tableID)

		require.NoError(t, err)
		assert.Equal(t, order.EatIn, o.Type())
		require.NotNil(t, o.TableID())
		assert.True(t, o.TableID().IsEqual(tableID))
	})

	t.Run("should allow negative quantities for adjustment lines", func(t *testing.T) {
		items := []order.LineItem{
			mustLineItem(t, 2, 12000),
			mustLineItem(t, -1, 12000),
		}

		o, err := order.NewEatInOrder(kernel.NewUUID(), time.Now(), items, kernel.NewUUID())

		require.NoError(t, err)
		assert.Len(t, o.LineItems(), 2)
	})

	t.Run("should fail with unconstructed table id", func(t *testing.T) {
		var invalidTableID kernel.UUID
		items := []order.LineItem{mustLineItem(t, 1, 12000)}

		o, err := order.NewEatInOrder(kernel.NewUUID(), time.Now(), items, invalidTableID)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrderLifecycle(t *testing.T) {
	newDelivery := func(t *testing.T) *order.Order {
		t.Helper()
		items := []order.LineItem{mustLineItem(t, 1, 16000)}
		o, err := order.NewDeliveryOrder(kernel.NewUUID(), time.Now(), items, "221B Baker Street")
		require.NoError(t, err)
		return o
	}

	newTakeout := func(t *testing.T) *order.Order {
		t.Helper()
		items := []order.LineItem{mustLineItem(t, 1, 9000)}
		o, err := order.NewTakeoutOrder(kernel.NewUUID(), time.Now(), items)
		require.NoError(t, err)
		return o
	}

	t.Run("delivery order walks the full delivery path", func(t *testing.T) {
		o := newDelivery(t)

		require.NoError(t, o.Accept())
		assert.Equal(t, order.Accepted, o.Status())

		require.NoError(t, o.Serve())
		assert.Equal(t, order.Served, o.Status())

		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.Delivering, o.Status())

		require.NoError(t, o.CompleteDelivery())
		assert.Equal(t, order.Delivered, o.Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("takeout order completes from served", func(t *testing.T) {
		o := newTakeout(t)

		require.NoError(t, o.Accept())
		require.NoError(t, o.Serve())
		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("takeout order cannot start delivery", func(t *testing.T) {
		o := newTakeout(t)

		require.NoError(t, o.Accept())
		require.NoError(t, o.Serve())

		err := o.StartDelivery()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Served, o.Status())
	})

	t.Run("delivery order cannot complete before delivered", func(t *testing.T) {
		o := newDelivery(t)

		require.NoError(t, o.Accept())
		require.NoError(t, o.Serve())

		err := o.Complete()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("failed transition leaves status unchanged", func(t *testing.T) {
		o := newDelivery(t)

		require.Error(t, o.Serve())
		assert.Equal(t, order.Waiting, o.Status())
	})
}

func TestOrderDispatchAmount(t *testing.T) {
	t.Run("should keep only the last line item's total", func(t *testing.T) {
		items := []order.LineItem{
			mustLineItem(t, 2, 16000),
			mustLineItem(t, 1, 9000),
		}

		o, err := order.NewDeliveryOrder(kernel.NewUUID(), time.Now(), items, "221B Baker Street")
		require.NoError(t, err)

		assert.True(t, o.DispatchAmount().Equal(decimal.NewFromInt(9000)))
	})

	t.Run("single line item reports its total", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 2, 16000)}

		o, err := order.NewDeliveryOrder(kernel.NewUUID(), time.Now(), items, "221B Baker Street")
		require.NoError(t, err)

		assert.True(t, o.DispatchAmount().Equal(decimal.NewFromInt(32000)))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with persisted status", func(t *testing.T) {
		tableID := kernel.NewUUID()
		items := []order.LineItem{mustLineItem(t, 2, 12000)}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), order.EatIn, order.Served, time.Now(), items, "", &tableID)

		require.NoError(t, err)
		assert.Equal(t, order.Served, o.Status())
		assert.True(t, o.TableID().IsEqual(tableID))
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 1, 12000)}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), order.Takeout, order.UnknownStatus, time.Now(), items, "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestLineItemTotal(t *testing.T) {
	t.Run("total is price times quantity", func(t *testing.T) {
		item := mustLineItem(t, 3, 16000)

		assert.True(t, item.Total().Equal(decimal.NewFromInt(48000)))
	})

	t.Run("total is negative for adjustment lines", func(t *testing.T) {
		item := mustLineItem(t, -2, 16000)

		assert.True(t, item.Total().Equal(decimal.NewFromInt(-32000)))
	})
}
