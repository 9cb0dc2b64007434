package trade

import (
	"testing"
	"time"

	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *SalesOrder {
	t.Helper()
	order, err := NewSalesOrder(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), PaymentMethodCash)
	require.NoError(t, err)
	return order
}

func TestNextOrderNumber(t *testing.T) {
	tests := []struct {
		existing int64
		expected string
	}{
		{0, "BO-000001"},
		{41, "BO-000042"},
		{999998, "BO-999999"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextOrderNumber(tt.existing))
		})
	}
}

func TestNewSalesOrder(t *testing.T) {
	t.Run("creates draft without order number", func(t *testing.T) {
		order := newTestOrder(t)

		assert.Empty(t, order.OrderNumber)
		assert.False(t, order.IsPlaced())
		assert.Equal(t, PaymentMethodCash, order.PaymentMethod)
		assert.True(t, order.Total.IsZero())
		assert.Empty(t, order.Items)
	})

	t.Run("rejects zero order date", func(t *testing.T) {
		_, err := NewSalesOrder(time.Time{}, PaymentMethodCash)
		require.Error(t, err)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := NewSalesOrder(time.Now(), PaymentMethod("barter"))
		require.Error(t, err)
	})
}

func TestSalesOrder_AddItem(t *testing.T) {
	t.Run("adds item and recalculates totals", func(t *testing.T) {
		order := newTestOrder(t)

		item, err := order.AddItem(uuid.New(), "Baby Bottle", 2, valueobject.NewMoneyHNLFromFloat(100))
		require.NoError(t, err)
		require.NotNil(t, item)

		assert.Equal(t, order.ID, item.OrderID)
		assert.True(t, item.Amount.Equal(decimal.NewFromInt(200)))
		assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(200)))
		assert.True(t, order.Total.Equal(order.Subtotal))
	})

	t.Run("totals sum across items", func(t *testing.T) {
		order := newTestOrder(t)

		_, err := order.AddItem(uuid.New(), "Baby Bottle", 2, valueobject.NewMoneyHNLFromFloat(100))
		require.NoError(t, err)
		_, err = order.AddItem(uuid.New(), "Pacifier", 3, valueobject.NewMoneyHNLFromFloat(25.5))
		require.NoError(t, err)

		assert.True(t, order.Total.Equal(decimal.NewFromFloat(276.5)))
		assert.Equal(t, 2, order.ItemCount())
		assert.Equal(t, 5, order.TotalQuantity())
	})

	t.Run("rejects duplicate product", func(t *testing.T) {
		order := newTestOrder(t)
		productID := uuid.New()

		_, err := order.AddItem(productID, "Baby Bottle", 2, valueobject.NewMoneyHNLFromFloat(100))
		require.NoError(t, err)
		_, err = order.AddItem(productID, "Baby Bottle", 1, valueobject.NewMoneyHNLFromFloat(100))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		order := newTestOrder(t)

		_, err := order.AddItem(uuid.New(), "Baby Bottle", 0, valueobject.NewMoneyHNLFromFloat(100))
		require.Error(t, err)
	})
}

func TestSalesOrder_UpdateItemQuantity(t *testing.T) {
	order := newTestOrder(t)
	item, err := order.AddItem(uuid.New(), "Baby Bottle", 2, valueobject.NewMoneyHNLFromFloat(100))
	require.NoError(t, err)

	t.Run("recalculates amount and totals", func(t *testing.T) {
		err := order.UpdateItemQuantity(item.ID, 5)
		require.NoError(t, err)

		updated := order.GetItem(item.ID)
		require.NotNil(t, updated)
		assert.Equal(t, 5, updated.Quantity)
		assert.True(t, updated.Amount.Equal(decimal.NewFromInt(500)))
		assert.True(t, order.Total.Equal(decimal.NewFromInt(500)))
	})

	t.Run("fails for unknown item", func(t *testing.T) {
		err := order.UpdateItemQuantity(uuid.New(), 3)
		require.Error(t, err)
	})
}

func TestSalesOrder_RemoveItem(t *testing.T) {
	order := newTestOrder(t)
	item1, err := order.AddItem(uuid.New(), "Baby Bottle", 2, valueobject.NewMoneyHNLFromFloat(100))
	require.NoError(t, err)
	_, err = order.AddItem(uuid.New(), "Pacifier", 1, valueobject.NewMoneyHNLFromFloat(30))
	require.NoError(t, err)

	err = order.RemoveItem(item1.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, order.ItemCount())
	assert.True(t, order.Total.Equal(decimal.NewFromInt(30)))
	assert.Nil(t, order.GetItem(item1.ID))
}

func TestSalesOrder_AssignOrderNumber(t *testing.T) {
	t.Run("assigns once and publishes SalesOrderPlaced", func(t *testing.T) {
		order := newTestOrder(t)
		_, err := order.AddItem(uuid.New(), "Baby Bottle", 2, valueobject.NewMoneyHNLFromFloat(100))
		require.NoError(t, err)

		err = order.AssignOrderNumber("BO-000042")
		require.NoError(t, err)

		assert.Equal(t, "BO-000042", order.OrderNumber)
		assert.True(t, order.IsPlaced())

		events := order.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeSalesOrderPlaced, events[0].EventType())

		event, ok := events[0].(*SalesOrderPlacedEvent)
		require.True(t, ok)
		assert.Equal(t, "BO-000042", event.OrderNumber)
		require.Len(t, event.Items, 1)
		assert.Equal(t, 2, event.Items[0].Quantity)
	})

	t.Run("rejects second assignment", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.AssignOrderNumber("BO-000001"))

		err := order.AssignOrderNumber("BO-000002")
		require.Error(t, err)
		assert.Equal(t, "BO-000001", order.OrderNumber)
	})

	t.Run("rejects empty number", func(t *testing.T) {
		order := newTestOrder(t)
		require.Error(t, order.AssignOrderNumber(""))
	})
}

func TestSalesOrder_Validate(t *testing.T) {
	order := newTestOrder(t)
	require.Error(t, order.Validate())

	_, err := order.AddItem(uuid.New(), "Baby Bottle", 1, valueobject.NewMoneyHNLFromFloat(100))
	require.NoError(t, err)
	require.NoError(t, order.Validate())
}

func TestSalesOrderItem_PriceSnapshot(t *testing.T) {
	// the line item keeps the price captured at sale time; catalog price
	// changes afterwards must not alter the stored amount
	order := newTestOrder(t)
	item, err := order.AddItem(uuid.New(), "Baby Bottle", 2, valueobject.NewMoneyHNLFromFloat(100))
	require.NoError(t, err)

	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Lps 200.00", item.GetAmountMoney().Format())
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethodCard.IsValid())
	assert.True(t, PaymentMethodTransfer.IsValid())
	assert.False(t, PaymentMethod("crypto").IsValid())
}
