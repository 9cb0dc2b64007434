package report

import (
	"github.com/babyheaven/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReorderAlert is the read model for a product requiring restock
type ReorderAlert struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Inventory int       `json:"inventory"`
}

// InventorySummary is the read model for the current state of the catalog
type InventorySummary struct {
	ProductCount        int             `json:"product_count"`
	TotalUnits          int             `json:"total_units"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	ReorderAlerts       []ReorderAlert  `json:"reorder_alerts"`
}

// ProductsNeedingReorder returns the zero-inventory products in catalog
// order. Negative counts from oversold placements are included as well;
// anything at or below zero needs restocking.
func ProductsNeedingReorder(products []catalog.Product) []ReorderAlert {
	alerts := make([]ReorderAlert, 0)
	for i := range products {
		if products[i].Inventory <= 0 {
			alerts = append(alerts, ReorderAlert{
				ProductID: products[i].ID,
				Name:      products[i].Name,
				Inventory: products[i].Inventory,
			})
		}
	}
	return alerts
}

// TotalInventoryValue returns the sum of selling_price x inventory across
// all products. Zero-inventory products contribute zero; negative counts
// subtract, keeping oversells visible in the valuation.
func TotalInventoryValue(products []catalog.Product) decimal.Decimal {
	total := decimal.Zero
	for i := range products {
		total = total.Add(products[i].InventoryValue())
	}
	return total
}

// BuildInventorySummary computes the full inventory read model from the
// loaded catalog
func BuildInventorySummary(products []catalog.Product) InventorySummary {
	totalUnits := 0
	for i := range products {
		totalUnits += products[i].Inventory
	}

	return InventorySummary{
		ProductCount:        len(products),
		TotalUnits:          totalUnits,
		TotalInventoryValue: TotalInventoryValue(products),
		ReorderAlerts:       ProductsNeedingReorder(products),
	}
}
