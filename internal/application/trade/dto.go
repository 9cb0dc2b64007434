package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/babyheaven/backend/internal/domain/trade"
)

// OrderItemRequest represents a line item in an order request
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// PlaceSalesOrderRequest represents a request to place a new sales order
type PlaceSalesOrderRequest struct {
	OrderDate     time.Time          `json:"order_date" binding:"required"`
	PaymentMethod string             `json:"payment_method" binding:"required,oneof=cash card transfer"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateSalesOrderRequest represents a request to edit an existing order.
// Edits replace the line items; inventory is never re-decremented.
type UpdateSalesOrderRequest struct {
	OrderDate     time.Time          `json:"order_date" binding:"required"`
	PaymentMethod string             `json:"payment_method" binding:"required,oneof=cash card transfer"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SalesOrderItemResponse represents a line item in API responses
type SalesOrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// SalesOrderResponse represents a sales order in API responses
type SalesOrderResponse struct {
	ID            uuid.UUID                `json:"id"`
	OrderNumber   string                   `json:"order_number"`
	OrderDate     time.Time                `json:"order_date"`
	Items         []SalesOrderItemResponse `json:"items"`
	Subtotal      decimal.Decimal          `json:"subtotal"`
	Total         decimal.Decimal          `json:"total"`
	PaymentMethod string                   `json:"payment_method"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
	Version       int                      `json:"version"`
}

// SalesOrderListFilter represents filter options for the order list
type SalesOrderListFilter struct {
	Month    string `form:"month" binding:"omitempty,len=7"` // YYYY-MM
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToSalesOrderResponse converts a domain SalesOrder to SalesOrderResponse
func ToSalesOrderResponse(o *trade.SalesOrder) SalesOrderResponse {
	items := make([]SalesOrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = SalesOrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}
	return SalesOrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		OrderDate:     o.OrderDate,
		Items:         items,
		Subtotal:      o.Subtotal,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod.String(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Version:       o.Version,
	}
}

// ToSalesOrderResponses converts a slice of domain SalesOrders
func ToSalesOrderResponses(orders []trade.SalesOrder) []SalesOrderResponse {
	responses := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToSalesOrderResponse(&orders[i])
	}
	return responses
}
