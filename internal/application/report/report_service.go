package report

import (
	"context"
	"time"

	"github.com/babyheaven/backend/internal/domain/catalog"
	"github.com/babyheaven/backend/internal/domain/finance"
	"github.com/babyheaven/backend/internal/domain/report"
	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
	"github.com/babyheaven/backend/internal/domain/trade"
)

// ReportService builds the monthly sales and inventory read models
type ReportService struct {
	orderRepo   trade.SalesOrderRepository
	expenseRepo finance.ExpenseRepository
	productRepo catalog.ProductRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	orderRepo trade.SalesOrderRepository,
	expenseRepo finance.ExpenseRepository,
	productRepo catalog.ProductRepository,
) *ReportService {
	return &ReportService{
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
		productRepo: productRepo,
	}
}

// MonthlySales builds the sales summary for a calendar month given as
// "YYYY-MM". Cost of goods is matched against the current catalog;
// products deleted since the sale are reported by name and priced at
// zero rather than failing the report.
func (s *ReportService) MonthlySales(ctx context.Context, month string) (*report.MonthlySalesSummary, error) {
	period, err := valueobject.ParsePeriod(month)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PERIOD", err.Error())
	}

	start := period.Start()
	end := period.End().Add(24*time.Hour - time.Nanosecond)

	orders, err := s.orderRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	products, err := s.allProducts(ctx)
	if err != nil {
		return nil, err
	}

	summary := report.BuildMonthlySalesSummary(period, orders, expenses, products)
	return &summary, nil
}

// Inventory builds the current inventory summary with reorder alerts
func (s *ReportService) Inventory(ctx context.Context) (*report.InventorySummary, error) {
	products, err := s.allProducts(ctx)
	if err != nil {
		return nil, err
	}

	summary := report.BuildInventorySummary(products)
	return &summary, nil
}

// Dashboard combines the current month's sales summary with the
// inventory summary for the landing view
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	period := valueobject.CurrentPeriod()

	sales, err := s.MonthlySales(ctx, period.String())
	if err != nil {
		return nil, err
	}

	inventory, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Sales:     *sales,
		Inventory: *inventory,
	}, nil
}

// allProducts loads the whole catalog without pagination. The catalog of
// a single shop is small enough to hold in memory for a report run.
func (s *ReportService) allProducts(ctx context.Context) ([]catalog.Product, error) {
	filter := shared.Filter{OrderBy: "created_at", OrderDir: "asc"}
	return s.productRepo.FindAll(ctx, filter)
}

// DashboardResponse is the combined read model for the dashboard
type DashboardResponse struct {
	Sales     report.MonthlySalesSummary `json:"sales"`
	Inventory report.InventorySummary    `json:"inventory"`
}
