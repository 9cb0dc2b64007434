package trade

import (
	"fmt"
	"time"

	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the free-form label for how the customer paid
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// IsValid checks if the payment method is one of the accepted labels
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// NextOrderNumber derives the human-readable order number from the number
// of orders already persisted. Must be evaluated inside the placement
// transaction so concurrent creators cannot read the same count.
func NextOrderNumber(existingOrderCount int64) string {
	return fmt.Sprintf("BO-%06d", existingOrderCount+1)
}

// SalesOrderItem is a line item in a sales order. It references the product
// by ID but carries a name and price snapshot so the order renders the same
// after later catalog edits.
type SalesOrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal // Selling price at time of sale
	Amount      decimal.Decimal // Quantity * UnitPrice
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSalesOrderItem creates a new sales order line item
func NewSalesOrderItem(orderID, productID uuid.UUID, productName string, quantity int, unitPrice valueobject.Money) (*SalesOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	qty := decimal.NewFromInt(int64(quantity))

	return &SalesOrderItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		Amount:      unitPrice.Amount().Mul(qty),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateQuantity updates the item quantity and recalculates the amount
func (i *SalesOrderItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.Amount = i.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	i.UpdatedAt = time.Now()

	return nil
}

// GetUnitPriceMoney returns the snapshot unit price as Money
func (i *SalesOrderItem) GetUnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyHNL(i.UnitPrice)
}

// GetAmountMoney returns the line amount as Money
func (i *SalesOrderItem) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyHNL(i.Amount)
}

// SalesOrder represents a customer sale. It owns its line items; they are
// created and deleted with the order.
type SalesOrder struct {
	shared.BaseAggregateRoot
	OrderNumber   string
	OrderDate     time.Time
	Items         []SalesOrderItem
	Subtotal      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
}

// NewSalesOrder creates a new sales order draft without a number.
// The order number is assigned by the repository when the order is placed.
func NewSalesOrder(orderDate time.Time, paymentMethod PaymentMethod) (*SalesOrder, error) {
	if orderDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_ORDER_DATE", "Order date cannot be empty")
	}
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", fmt.Sprintf("Unknown payment method %q", paymentMethod))
	}

	return &SalesOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderDate:         orderDate,
		Items:             make([]SalesOrderItem, 0),
		Subtotal:          decimal.Zero,
		Total:             decimal.Zero,
		PaymentMethod:     paymentMethod,
	}, nil
}

// AssignOrderNumber sets the order number on a draft. Called once, inside
// the placement transaction.
func (o *SalesOrder) AssignOrderNumber(number string) error {
	if number == "" {
		return shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if o.OrderNumber != "" {
		return shared.NewDomainError("ORDER_NUMBER_ASSIGNED", "Order number is already assigned")
	}

	o.OrderNumber = number
	o.AddDomainEvent(NewSalesOrderPlacedEvent(o))

	return nil
}

// AddItem adds a new line item to the order
func (o *SalesOrder) AddItem(productID uuid.UUID, productName string, quantity int, unitPrice valueobject.Money) (*SalesOrderItem, error) {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", "Product already exists in order, update quantity instead")
		}
	}

	item, err := NewSalesOrderItem(o.ID, productID, productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotals()
	o.UpdatedAt = time.Now()

	return item, nil
}

// UpdateItemQuantity updates the quantity of an existing line item
func (o *SalesOrder) UpdateItemQuantity(itemID uuid.UUID, quantity int) error {
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			if err := o.Items[idx].UpdateQuantity(quantity); err != nil {
				return err
			}
			o.recalculateTotals()
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Order item not found")
}

// RemoveItem removes a line item from the order
func (o *SalesOrder) RemoveItem(itemID uuid.UUID) error {
	for idx, item := range o.Items {
		if item.ID == itemID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			o.recalculateTotals()
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Order item not found")
}

// ChangePaymentMethod updates the payment method label
func (o *SalesOrder) ChangePaymentMethod(method PaymentMethod) error {
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", fmt.Sprintf("Unknown payment method %q", method))
	}

	o.PaymentMethod = method
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// ChangeOrderDate updates the order date
func (o *SalesOrder) ChangeOrderDate(date time.Time) error {
	if date.IsZero() {
		return shared.NewDomainError("INVALID_ORDER_DATE", "Order date cannot be empty")
	}

	o.OrderDate = date
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// Validate checks that the order is complete enough to place
func (o *SalesOrder) Validate() error {
	if len(o.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Cannot place an order without line items")
	}
	return nil
}

// recalculateTotals keeps subtotal and total equal to the sum of line
// amounts. The two fields are stored separately for the order record but
// carry the same value: no order-level adjustment exists.
func (o *SalesOrder) recalculateTotals() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	o.Subtotal = total
	o.Total = total
}

// GetTotalMoney returns the order total as Money
func (o *SalesOrder) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyHNL(o.Total)
}

// ItemCount returns the number of line items in the order
func (o *SalesOrder) ItemCount() int {
	return len(o.Items)
}

// TotalQuantity returns the sum of all line item quantities
func (o *SalesOrder) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// IsPlaced returns true once the order has been numbered and persisted
func (o *SalesOrder) IsPlaced() bool {
	return o.OrderNumber != ""
}

// GetItem returns a line item by its ID
func (o *SalesOrder) GetItem(itemID uuid.UUID) *SalesOrderItem {
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			return &o.Items[idx]
		}
	}
	return nil
}

// GetItemByProduct returns a line item by product ID
func (o *SalesOrder) GetItemByProduct(productID uuid.UUID) *SalesOrderItem {
	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			return &o.Items[idx]
		}
	}
	return nil
}
