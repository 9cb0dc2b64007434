package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/babyheaven/backend/internal/domain/finance"
	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
)

// MockExpenseRepository is a mock implementation of ExpenseRepository
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]finance.Expense, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func mustMoney(t *testing.T, amount float64) valueobject.Money {
	t.Helper()
	return valueobject.NewMoneyHNLFromFloat(amount)
}

func TestExpenseService_Record(t *testing.T) {
	t.Run("records expense successfully", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		service := NewExpenseService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Expense")).Return(nil)

		resp, err := service.Record(context.Background(), RecordExpenseRequest{
			ExpenseDate: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			Description: "Store rent",
			Amount:      decimal.NewFromInt(500),
		})

		require.NoError(t, err)
		assert.Equal(t, "Store rent", resp.Description)
		assert.True(t, resp.Amount.Equal(decimal.NewFromInt(500)))
		repo.AssertExpectations(t)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		service := NewExpenseService(repo)

		resp, err := service.Record(context.Background(), RecordExpenseRequest{
			ExpenseDate: time.Now(),
			Description: "Store rent",
			Amount:      decimal.Zero,
		})

		assert.Nil(t, resp)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestExpenseService_List(t *testing.T) {
	t.Run("filters by calendar month", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		service := NewExpenseService(repo)

		start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
		repo.On("FindByDateRange", mock.Anything, start, end).Return([]finance.Expense{}, nil)

		_, err := service.List(context.Background(), ExpenseListFilter{Month: "2024-02"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects malformed month token", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		service := NewExpenseService(repo)

		_, err := service.List(context.Background(), ExpenseListFilter{Month: "02-2024"})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "FindByDateRange")
	})
}

func TestExpenseService_Update(t *testing.T) {
	repo := new(MockExpenseRepository)
	service := NewExpenseService(repo)

	expense, err := finance.NewExpense(
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		"Packaging",
		mustMoney(t, 120),
	)
	require.NoError(t, err)
	expense.ClearDomainEvents()

	repo.On("FindByID", mock.Anything, expense.ID).Return(expense, nil)
	repo.On("Save", mock.Anything, expense).Return(nil)

	resp, err := service.Update(context.Background(), expense.ID, UpdateExpenseRequest{
		ExpenseDate: time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC),
		Description: "Packaging supplies",
		Amount:      decimal.NewFromInt(150),
	})

	require.NoError(t, err)
	assert.Equal(t, "Packaging supplies", resp.Description)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(150)))
	repo.AssertExpectations(t)
}

func TestExpenseService_Delete(t *testing.T) {
	t.Run("returns not found for missing expense", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		service := NewExpenseService(repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(context.Background(), id)

		assert.Equal(t, shared.ErrNotFound, err)
		repo.AssertNotCalled(t, "Delete")
	})
}
