package finance

import (
	"time"

	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeExpense = "Expense"

// Event type constants
const (
	EventTypeExpenseRecorded = "ExpenseRecorded"
	EventTypeExpenseUpdated  = "ExpenseUpdated"
	EventTypeExpenseDeleted  = "ExpenseDeleted"
)

// ExpenseRecordedEvent is published when a new expense is recorded
type ExpenseRecordedEvent struct {
	shared.BaseDomainEvent
	ExpenseID   uuid.UUID       `json:"expense_id"`
	ExpenseDate time.Time       `json:"expense_date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewExpenseRecordedEvent creates a new ExpenseRecordedEvent
func NewExpenseRecordedEvent(expense *Expense) *ExpenseRecordedEvent {
	return &ExpenseRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseRecorded, AggregateTypeExpense, expense.ID),
		ExpenseID:       expense.ID,
		ExpenseDate:     expense.ExpenseDate,
		Description:     expense.Description,
		Amount:          expense.Amount,
	}
}

// ExpenseUpdatedEvent is published when an expense is updated
type ExpenseUpdatedEvent struct {
	shared.BaseDomainEvent
	ExpenseID   uuid.UUID       `json:"expense_id"`
	ExpenseDate time.Time       `json:"expense_date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewExpenseUpdatedEvent creates a new ExpenseUpdatedEvent
func NewExpenseUpdatedEvent(expense *Expense) *ExpenseUpdatedEvent {
	return &ExpenseUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseUpdated, AggregateTypeExpense, expense.ID),
		ExpenseID:       expense.ID,
		ExpenseDate:     expense.ExpenseDate,
		Description:     expense.Description,
		Amount:          expense.Amount,
	}
}

// ExpenseDeletedEvent is published when an expense is deleted
type ExpenseDeletedEvent struct {
	shared.BaseDomainEvent
	ExpenseID uuid.UUID `json:"expense_id"`
}

// NewExpenseDeletedEvent creates a new ExpenseDeletedEvent
func NewExpenseDeletedEvent(expense *Expense) *ExpenseDeletedEvent {
	return &ExpenseDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseDeleted, AggregateTypeExpense, expense.ID),
		ExpenseID:       expense.ID,
	}
}
