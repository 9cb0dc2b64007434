package catalog

import (
	"time"

	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Product represents a product in the store catalog
// It is the aggregate root for catalog operations
type Product struct {
	shared.BaseAggregateRoot
	Name         string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Base/list price
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Price charged on sale
	CostPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Acquisition cost, used for profit reporting
	Inventory    int             `gorm:"not null;default:0"`
	ImageURL     string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name string, unitPrice, sellingPrice, costPrice valueobject.Money, inventory int) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrices(unitPrice, sellingPrice, costPrice); err != nil {
		return nil, err
	}
	if inventory < 0 {
		return nil, shared.NewDomainError("INVALID_INVENTORY", "Inventory cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		UnitPrice:         unitPrice.Amount(),
		SellingPrice:      sellingPrice.Amount(),
		CostPrice:         costPrice.Amount(),
		Inventory:         inventory,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name string, unitPrice, sellingPrice, costPrice valueobject.Money) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validatePrices(unitPrice, sellingPrice, costPrice); err != nil {
		return err
	}

	p.Name = name
	p.UnitPrice = unitPrice.Amount()
	p.SellingPrice = sellingPrice.Amount()
	p.CostPrice = costPrice.Amount()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetImageURL sets the product image reference
func (p *Product) SetImageURL(url string) {
	p.ImageURL = url
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetInventory replaces the inventory count with an explicit value,
// as entered on a direct catalog edit.
func (p *Product) SetInventory(count int) error {
	if count < 0 {
		return shared.NewDomainError("INVALID_INVENTORY", "Inventory cannot be negative")
	}

	old := p.Inventory
	p.Inventory = count
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductInventoryAdjustedEvent(p, old))

	return nil
}

// DecrementInventory reduces inventory by the sold quantity. The count is
// allowed to go negative: overselling is recorded as-is so the discrepancy
// stays visible in the reorder scan rather than being clamped away.
func (p *Product) DecrementInventory(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	old := p.Inventory
	p.Inventory -= quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductInventoryAdjustedEvent(p, old))
	if p.Inventory <= 0 {
		p.AddDomainEvent(NewProductOutOfStockEvent(p))
	}

	return nil
}

// IsSellable returns true if the product can appear on new order line items
func (p *Product) IsSellable() bool {
	return p.Inventory > 0
}

// NeedsReorder returns true if the product is out of stock. Oversold
// products with a negative count need restocking too.
func (p *Product) NeedsReorder() bool {
	return p.Inventory <= 0
}

// GetSellingPriceMoney returns the selling price as a Money value object
func (p *Product) GetSellingPriceMoney() valueobject.Money {
	return valueobject.NewMoneyHNL(p.SellingPrice)
}

// GetCostPriceMoney returns the cost price as a Money value object
func (p *Product) GetCostPriceMoney() valueobject.Money {
	return valueobject.NewMoneyHNL(p.CostPrice)
}

// InventoryValue returns selling_price x inventory for this product.
// Zero-inventory products contribute zero.
func (p *Product) InventoryValue() decimal.Decimal {
	return p.SellingPrice.Mul(decimal.NewFromInt(int64(p.Inventory)))
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrices(unitPrice, sellingPrice, costPrice valueobject.Money) error {
	if unitPrice.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if sellingPrice.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	if costPrice.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}
	return nil
}
