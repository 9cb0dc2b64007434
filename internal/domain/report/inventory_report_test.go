package report

import (
	"testing"

	"github.com/babyheaven/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsNeedingReorder(t *testing.T) {
	t.Run("returns zero-inventory products in catalog order", func(t *testing.T) {
		first := newCatalogProduct(t, "First", 10, 5, 0)
		stocked := newCatalogProduct(t, "Stocked", 10, 5, 5)
		second := newCatalogProduct(t, "Second", 10, 5, 0)

		alerts := ProductsNeedingReorder([]catalog.Product{first, stocked, second})

		require.Len(t, alerts, 2)
		assert.Equal(t, "First", alerts[0].Name)
		assert.Equal(t, "Second", alerts[1].Name)
	})

	t.Run("includes oversold products", func(t *testing.T) {
		product := newCatalogProduct(t, "Oversold", 10, 5, 2)
		require.NoError(t, product.DecrementInventory(5))

		alerts := ProductsNeedingReorder([]catalog.Product{product})
		require.Len(t, alerts, 1)
		assert.Equal(t, -3, alerts[0].Inventory)
	})

	t.Run("empty catalog yields no alerts", func(t *testing.T) {
		assert.Empty(t, ProductsNeedingReorder(nil))
	})
}

func TestTotalInventoryValue(t *testing.T) {
	t.Run("sums selling_price x inventory", func(t *testing.T) {
		products := []catalog.Product{
			newCatalogProduct(t, "A", 10, 5, 2),
			newCatalogProduct(t, "B", 5, 2, 0),
		}
		assert.True(t, TotalInventoryValue(products).Equal(decimal.NewFromInt(20)))
	})

	t.Run("empty catalog values zero", func(t *testing.T) {
		assert.True(t, TotalInventoryValue(nil).IsZero())
	})
}

func TestBuildInventorySummary(t *testing.T) {
	products := []catalog.Product{
		newCatalogProduct(t, "A", 10, 5, 2),
		newCatalogProduct(t, "B", 5, 2, 0),
		newCatalogProduct(t, "C", 20, 8, 3),
	}

	summary := BuildInventorySummary(products)

	assert.Equal(t, 3, summary.ProductCount)
	assert.Equal(t, 5, summary.TotalUnits)
	assert.True(t, summary.TotalInventoryValue.Equal(decimal.NewFromInt(80)))
	require.Len(t, summary.ReorderAlerts, 1)
	assert.Equal(t, "B", summary.ReorderAlerts[0].Name)
}
