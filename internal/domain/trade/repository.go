package trade

import (
	"context"
	"time"

	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SalesOrderRepository defines the interface for sales order persistence
type SalesOrderRepository interface {
	// FindByID finds a sales order with its line items by ID
	FindByID(ctx context.Context, id uuid.UUID) (*SalesOrder, error)

	// FindByOrderNumber finds a sales order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*SalesOrder, error)

	// FindAll finds all sales orders matching the filter, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesOrder, error)

	// FindByDateRange finds sales orders whose order date falls within
	// [start, end], inclusive on both ends
	FindByDateRange(ctx context.Context, start, end time.Time) ([]SalesOrder, error)

	// Place atomically numbers and persists a new order and decrements the
	// inventory of every referenced product in the same transaction. On any
	// failure the order is not persisted and no inventory changes.
	Place(ctx context.Context, order *SalesOrder) error

	// Update persists changes to an existing order and its line items.
	// Inventory is never touched on edit.
	Update(ctx context.Context, order *SalesOrder) error

	// Delete deletes a sales order together with its line items
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts all persisted sales orders
	Count(ctx context.Context) (int64, error)

	// ExistsByOrderNumber checks if an order number is already taken
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
}
