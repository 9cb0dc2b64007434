package trade

import (
	"time"

	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeSalesOrder = "SalesOrder"

// Event type constants
const (
	EventTypeSalesOrderPlaced  = "SalesOrderPlaced"
	EventTypeSalesOrderUpdated = "SalesOrderUpdated"
	EventTypeSalesOrderDeleted = "SalesOrderDeleted"
)

// SalesOrderPlacedItem is the line-item payload carried by SalesOrderPlacedEvent
type SalesOrderPlacedItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
}

// SalesOrderPlacedEvent is published when a new order is numbered and placed.
// Inventory decrements are driven by the placement transaction itself; this
// event exists for downstream listeners such as out-of-stock alerting.
type SalesOrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID              `json:"order_id"`
	OrderNumber   string                 `json:"order_number"`
	OrderDate     time.Time              `json:"order_date"`
	Total         decimal.Decimal        `json:"total"`
	PaymentMethod PaymentMethod          `json:"payment_method"`
	Items         []SalesOrderPlacedItem `json:"items"`
}

// NewSalesOrderPlacedEvent creates a new SalesOrderPlacedEvent
func NewSalesOrderPlacedEvent(order *SalesOrder) *SalesOrderPlacedEvent {
	items := make([]SalesOrderPlacedItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = SalesOrderPlacedItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		}
	}

	return &SalesOrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderPlaced, AggregateTypeSalesOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		OrderDate:       order.OrderDate,
		Total:           order.Total,
		PaymentMethod:   order.PaymentMethod,
		Items:           items,
	}
}

// SalesOrderUpdatedEvent is published when an existing order is edited
type SalesOrderUpdatedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID       `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
}

// NewSalesOrderUpdatedEvent creates a new SalesOrderUpdatedEvent
func NewSalesOrderUpdatedEvent(order *SalesOrder) *SalesOrderUpdatedEvent {
	return &SalesOrderUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderUpdated, AggregateTypeSalesOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		Total:           order.Total,
	}
}

// SalesOrderDeletedEvent is published when an order is deleted
type SalesOrderDeletedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
}

// NewSalesOrderDeletedEvent creates a new SalesOrderDeletedEvent
func NewSalesOrderDeletedEvent(order *SalesOrder) *SalesOrderDeletedEvent {
	return &SalesOrderDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderDeleted, AggregateTypeSalesOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
	}
}
