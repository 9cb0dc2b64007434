package catalog

import (
	"testing"

	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHNL(t *testing.T, value float64) valueobject.Money {
	t.Helper()
	return valueobject.NewMoneyHNLFromFloat(value)
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 10)
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Baby Bottle", product.Name)
		assert.True(t, product.UnitPrice.Equal(decimal.NewFromInt(100)))
		assert.True(t, product.SellingPrice.Equal(decimal.NewFromInt(120)))
		assert.True(t, product.CostPrice.Equal(decimal.NewFromInt(60)))
		assert.Equal(t, 10, product.Inventory)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("publishes ProductCreated event", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 10)
		require.NoError(t, err)

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())

		event, ok := events[0].(*ProductCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, product.ID, event.ProductID)
		assert.Equal(t, product.Name, event.Name)
		assert.Equal(t, 10, event.Inventory)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, -120), mustHNL(t, 60), 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Selling price cannot be negative")
	})

	t.Run("fails with negative inventory", func(t *testing.T) {
		_, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Inventory cannot be negative")
	})
}

func TestProduct_Update(t *testing.T) {
	t.Run("updates name and prices", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 10)
		require.NoError(t, err)
		product.ClearDomainEvents()

		err = product.Update("Baby Bottle XL", mustHNL(t, 110), mustHNL(t, 140), mustHNL(t, 70))
		require.NoError(t, err)

		assert.Equal(t, "Baby Bottle XL", product.Name)
		assert.True(t, product.SellingPrice.Equal(decimal.NewFromInt(140)))
		assert.Equal(t, 2, product.GetVersion())

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductUpdated, events[0].EventType())
	})

	t.Run("does not touch inventory", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 7)
		require.NoError(t, err)

		err = product.Update("Baby Bottle XL", mustHNL(t, 110), mustHNL(t, 140), mustHNL(t, 70))
		require.NoError(t, err)
		assert.Equal(t, 7, product.Inventory)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 10)
		require.NoError(t, err)

		err = product.Update("", mustHNL(t, 110), mustHNL(t, 140), mustHNL(t, 70))
		require.Error(t, err)
	})
}

func TestProduct_DecrementInventory(t *testing.T) {
	t.Run("decrements by sold quantity", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 10)
		require.NoError(t, err)
		product.ClearDomainEvents()

		err = product.DecrementInventory(3)
		require.NoError(t, err)
		assert.Equal(t, 7, product.Inventory)

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		event, ok := events[0].(*ProductInventoryAdjustedEvent)
		require.True(t, ok)
		assert.Equal(t, 10, event.OldInventory)
		assert.Equal(t, 7, event.NewInventory)
	})

	t.Run("allows inventory to go negative", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 2)
		require.NoError(t, err)

		err = product.DecrementInventory(5)
		require.NoError(t, err)
		assert.Equal(t, -3, product.Inventory)
	})

	t.Run("publishes ProductOutOfStock at zero", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 3)
		require.NoError(t, err)
		product.ClearDomainEvents()

		err = product.DecrementInventory(3)
		require.NoError(t, err)

		events := product.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, EventTypeProductOutOfStock, events[1].EventType())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 10)
		require.NoError(t, err)

		err = product.DecrementInventory(0)
		require.Error(t, err)
		err = product.DecrementInventory(-1)
		require.Error(t, err)
	})
}

func TestProduct_SetInventory(t *testing.T) {
	t.Run("replaces the count", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 10)
		require.NoError(t, err)

		err = product.SetInventory(25)
		require.NoError(t, err)
		assert.Equal(t, 25, product.Inventory)
	})

	t.Run("rejects negative count", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 10)
		require.NoError(t, err)

		err = product.SetInventory(-1)
		require.Error(t, err)
		assert.Equal(t, 10, product.Inventory)
	})
}

func TestProduct_Sellability(t *testing.T) {
	t.Run("sellable while stock remains", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 1)
		require.NoError(t, err)
		assert.True(t, product.IsSellable())
		assert.False(t, product.NeedsReorder())
	})

	t.Run("zero inventory is not sellable and needs reorder", func(t *testing.T) {
		product, err := NewProduct("Baby Bottle", mustHNL(t, 100), mustHNL(t, 120), mustHNL(t, 60), 0)
		require.NoError(t, err)
		assert.False(t, product.IsSellable())
		assert.True(t, product.NeedsReorder())
	})
}

func TestProduct_InventoryValue(t *testing.T) {
	tests := []struct {
		name         string
		sellingPrice float64
		inventory    int
		expected     int64
	}{
		{"in stock", 10, 2, 20},
		{"zero inventory contributes zero", 5, 0, 0},
		{"single unit", 120, 1, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct("P", mustHNL(t, tt.sellingPrice), mustHNL(t, tt.sellingPrice), mustHNL(t, 1), tt.inventory)
			require.NoError(t, err)
			assert.True(t, product.InventoryValue().Equal(decimal.NewFromInt(tt.expected)))
		})
	}
}
