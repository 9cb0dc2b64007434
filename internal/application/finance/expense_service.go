package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/babyheaven/backend/internal/domain/finance"
	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
)

// ExpenseService handles expense business operations
type ExpenseService struct {
	expenseRepo    finance.ExpenseRepository
	eventPublisher shared.EventPublisher
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// SetEventPublisher sets the event publisher for domain events
func (s *ExpenseService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Record records a new expense
func (s *ExpenseService) Record(ctx context.Context, req RecordExpenseRequest) (*ExpenseResponse, error) {
	expense, err := finance.NewExpense(req.ExpenseDate, req.Description, valueobject.NewMoneyHNL(req.Amount))
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, expense)

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToExpenseResponse(expense)
	return &response, nil
}

// List retrieves expenses, optionally restricted to a calendar month
func (s *ExpenseService) List(ctx context.Context, filter ExpenseListFilter) ([]ExpenseResponse, error) {
	if filter.Month != "" {
		period, err := valueobject.ParsePeriod(filter.Month)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_PERIOD", err.Error())
		}
		end := period.End().Add(24*time.Hour - time.Nanosecond)
		expenses, err := s.expenseRepo.FindByDateRange(ctx, period.Start(), end)
		if err != nil {
			return nil, err
		}
		return ToExpenseResponses(expenses), nil
	}

	repoFilter := shared.DefaultFilter()
	repoFilter.Search = filter.Search
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}

	expenses, err := s.expenseRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	return ToExpenseResponses(expenses), nil
}

// Update updates an existing expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := expense.Update(req.ExpenseDate, req.Description, valueobject.NewMoneyHNL(req.Amount)); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, expense)

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Delete deletes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}

func (s *ExpenseService) publishEvents(ctx context.Context, expense *finance.Expense) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range expense.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	expense.ClearDomainEvents()
}
