package finance

import (
	"context"
	"time"

	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	// FindByID finds an expense by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// FindAll finds all expenses matching the filter, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]Expense, error)

	// FindByDateRange finds expenses whose date falls within [start, end],
	// inclusive on both ends
	FindByDateRange(ctx context.Context, start, end time.Time) ([]Expense, error)

	// Save creates or updates an expense
	Save(ctx context.Context, expense *Expense) error

	// Delete deletes an expense
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts all expenses
	Count(ctx context.Context) (int64, error)
}
