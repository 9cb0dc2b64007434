package finance

import (
	"time"

	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Expense represents a standalone business expense. Expenses are independent
// of products and sales orders; their only role besides bookkeeping is
// reducing the monthly result on the dashboard.
type Expense struct {
	shared.BaseAggregateRoot
	ExpenseDate time.Time       `gorm:"not null;index"`
	Description string          `gorm:"type:varchar(500);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense record
func NewExpense(expenseDate time.Time, description string, amount valueobject.Money) (*Expense, error) {
	if expenseDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_EXPENSE_DATE", "Expense date cannot be empty")
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}

	expense := &Expense{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ExpenseDate:       expenseDate,
		Description:       description,
		Amount:            amount.Amount(),
	}

	expense.AddDomainEvent(NewExpenseRecordedEvent(expense))

	return expense, nil
}

// Update updates the expense's date, description and amount
func (e *Expense) Update(expenseDate time.Time, description string, amount valueobject.Money) error {
	if expenseDate.IsZero() {
		return shared.NewDomainError("INVALID_EXPENSE_DATE", "Expense date cannot be empty")
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}

	e.ExpenseDate = expenseDate
	e.Description = description
	e.Amount = amount.Amount()
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewExpenseUpdatedEvent(e))

	return nil
}

// GetAmountMoney returns the expense amount as Money
func (e *Expense) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyHNL(e.Amount)
}

func validateDescription(description string) error {
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	return nil
}
