package catalog

import (
	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeProduct = "Product"

// Event type constants
const (
	EventTypeProductCreated           = "ProductCreated"
	EventTypeProductUpdated           = "ProductUpdated"
	EventTypeProductInventoryAdjusted = "ProductInventoryAdjusted"
	EventTypeProductOutOfStock        = "ProductOutOfStock"
	EventTypeProductDeleted           = "ProductDeleted"
)

// ProductCreatedEvent is published when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Inventory int       `json:"inventory"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
		Inventory:       product.Inventory,
	}
}

// ProductUpdatedEvent is published when a product is updated
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
	}
}

// ProductInventoryAdjustedEvent is published when a product's inventory changes
type ProductInventoryAdjustedEvent struct {
	shared.BaseDomainEvent
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	OldInventory int       `json:"old_inventory"`
	NewInventory int       `json:"new_inventory"`
}

// NewProductInventoryAdjustedEvent creates a new ProductInventoryAdjustedEvent
func NewProductInventoryAdjustedEvent(product *Product, oldInventory int) *ProductInventoryAdjustedEvent {
	return &ProductInventoryAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductInventoryAdjusted, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
		OldInventory:    oldInventory,
		NewInventory:    product.Inventory,
	}
}

// ProductOutOfStockEvent is published when a product's inventory reaches zero
// or below, feeding the reorder scan
type ProductOutOfStockEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Inventory int       `json:"inventory"`
}

// NewProductOutOfStockEvent creates a new ProductOutOfStockEvent
func NewProductOutOfStockEvent(product *Product) *ProductOutOfStockEvent {
	return &ProductOutOfStockEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductOutOfStock, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
		Inventory:       product.Inventory,
	}
}

// ProductDeletedEvent is published when a product is deleted
type ProductDeletedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
}

// NewProductDeletedEvent creates a new ProductDeletedEvent
func NewProductDeletedEvent(product *Product) *ProductDeletedEvent {
	return &ProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeleted, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
	}
}
