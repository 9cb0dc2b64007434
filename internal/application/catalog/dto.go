package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/babyheaven/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
	SellingPrice decimal.Decimal `json:"selling_price" binding:"required"`
	CostPrice    decimal.Decimal `json:"cost_price" binding:"required"`
	Inventory    int             `json:"inventory" binding:"min=0"`
	ImageURL     string          `json:"image_url"`
}

// UpdateProductRequest represents a request to update a product.
// Inventory is deliberately absent: the count only changes through sales
// or an explicit inventory adjustment.
type UpdateProductRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
	SellingPrice decimal.Decimal `json:"selling_price" binding:"required"`
	CostPrice    decimal.Decimal `json:"cost_price" binding:"required"`
	ImageURL     *string         `json:"image_url"`
}

// AdjustInventoryRequest represents a manual inventory correction
type AdjustInventoryRequest struct {
	Inventory int `json:"inventory" binding:"min=0"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Inventory    int             `json:"inventory"`
	ImageURL     string          `json:"image_url"`
	Sellable     bool            `json:"sellable"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Version      int             `json:"version"`
}

// ProductListFilter represents filter options for product list
type ProductListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		UnitPrice:    p.UnitPrice,
		SellingPrice: p.SellingPrice,
		CostPrice:    p.CostPrice,
		Inventory:    p.Inventory,
		ImageURL:     p.ImageURL,
		Sellable:     p.IsSellable(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Version:      p.Version,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
