package report

import (
	"github.com/babyheaven/backend/internal/domain/catalog"
	"github.com/babyheaven/backend/internal/domain/finance"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
	"github.com/babyheaven/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySalesSummary is the read model for one month of trading
type MonthlySalesSummary struct {
	Period          string          `json:"period"`
	OrderCount      int             `json:"order_count"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	CostOfGoods     decimal.Decimal `json:"cost_of_goods"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	NetResult       decimal.Decimal `json:"net_result"` // GrossProfit - TotalExpenses
	MissingProducts []string        `json:"missing_products,omitempty"`
}

// CatalogIndex is a product lookup keyed by product ID, built once per
// report run so cost matching does not rescan the catalog per line item.
type CatalogIndex map[uuid.UUID]*catalog.Product

// NewCatalogIndex builds a CatalogIndex from a product collection
func NewCatalogIndex(products []catalog.Product) CatalogIndex {
	index := make(CatalogIndex, len(products))
	for i := range products {
		index[products[i].ID] = &products[i]
	}
	return index
}

// SumOrderTotals returns the arithmetic sum of order totals.
// An empty collection sums to zero.
func SumOrderTotals(orders []trade.SalesOrder) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.Total)
	}
	return total
}

// SumExpenseAmounts returns the arithmetic sum of expense amounts.
// An empty collection sums to zero.
func SumExpenseAmounts(expenses []finance.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

// CostOfGoods accumulates cost_price x quantity across an order's line
// items. A line item whose product is no longer in the catalog contributes
// zero; its name snapshot is returned so the caller can surface the gap as
// a diagnostic instead of failing the whole computation.
func CostOfGoods(order *trade.SalesOrder, index CatalogIndex) (decimal.Decimal, []string) {
	cost := decimal.Zero
	var missing []string

	for _, item := range order.Items {
		product, ok := index[item.ProductID]
		if !ok {
			missing = append(missing, item.ProductName)
			continue
		}
		cost = cost.Add(product.CostPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return cost, missing
}

// Profit returns order total minus cost of goods, with the same missing
// product diagnostics as CostOfGoods
func Profit(order *trade.SalesOrder, index CatalogIndex) (decimal.Decimal, []string) {
	cost, missing := CostOfGoods(order, index)
	return order.Total.Sub(cost), missing
}

// FilterOrdersByPeriod returns the orders whose order date falls within the
// period, inclusive on both month boundaries, preserving order
func FilterOrdersByPeriod(orders []trade.SalesOrder, period valueobject.Period) []trade.SalesOrder {
	filtered := make([]trade.SalesOrder, 0, len(orders))
	for _, order := range orders {
		if period.Contains(order.OrderDate) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// FilterExpensesByPeriod returns the expenses whose date falls within the
// period, inclusive on both month boundaries, preserving order
func FilterExpensesByPeriod(expenses []finance.Expense, period valueobject.Period) []finance.Expense {
	filtered := make([]finance.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if period.Contains(expense.ExpenseDate) {
			filtered = append(filtered, expense)
		}
	}
	return filtered
}

// BuildMonthlySalesSummary computes the full monthly summary from
// already-loaded collections. Orders and expenses are filtered to the
// period here so callers can pass unfiltered data.
func BuildMonthlySalesSummary(period valueobject.Period, orders []trade.SalesOrder, expenses []finance.Expense, products []catalog.Product) MonthlySalesSummary {
	periodOrders := FilterOrdersByPeriod(orders, period)
	periodExpenses := FilterExpensesByPeriod(expenses, period)
	index := NewCatalogIndex(products)

	totalSales := SumOrderTotals(periodOrders)
	totalCost := decimal.Zero
	var missing []string
	for i := range periodOrders {
		cost, miss := CostOfGoods(&periodOrders[i], index)
		totalCost = totalCost.Add(cost)
		missing = append(missing, miss...)
	}

	grossProfit := totalSales.Sub(totalCost)
	totalExpenses := SumExpenseAmounts(periodExpenses)

	return MonthlySalesSummary{
		Period:          period.String(),
		OrderCount:      len(periodOrders),
		TotalSales:      totalSales,
		CostOfGoods:     totalCost,
		GrossProfit:     grossProfit,
		TotalExpenses:   totalExpenses,
		NetResult:       grossProfit.Sub(totalExpenses),
		MissingProducts: missing,
	}
}
