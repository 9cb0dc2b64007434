package trade

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/babyheaven/backend/internal/domain/catalog"
	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
	"github.com/babyheaven/backend/internal/domain/trade"
)

// SalesOrderService handles sales order business operations
type SalesOrderService struct {
	orderRepo      trade.SalesOrderRepository
	productRepo    catalog.ProductRepository
	eventPublisher shared.EventPublisher
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(orderRepo trade.SalesOrderRepository, productRepo catalog.ProductRepository) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *SalesOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Place creates and places a new sales order. Product name and selling
// price are snapshotted into the line items at this moment; later catalog
// edits do not rewrite past orders. Numbering, persistence, and inventory
// decrement happen in a single transaction.
func (s *SalesOrderService) Place(ctx context.Context, req PlaceSalesOrderRequest) (*SalesOrderResponse, error) {
	order, err := trade.NewSalesOrder(req.OrderDate, trade.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		product := products[item.ProductID]
		if _, err := order.AddItem(
			product.ID,
			product.Name,
			item.Quantity,
			valueobject.NewMoneyHNL(product.SellingPrice),
		); err != nil {
			return nil, err
		}
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Place(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a sales order by ID
func (s *SalesOrderService) GetByID(ctx context.Context, id uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order)
	return &response, nil
}

// GetByOrderNumber retrieves a sales order by its order number
func (s *SalesOrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order)
	return &response, nil
}

// List retrieves sales orders, optionally restricted to a calendar month
func (s *SalesOrderService) List(ctx context.Context, filter SalesOrderListFilter) ([]SalesOrderResponse, error) {
	if filter.Month != "" {
		period, err := valueobject.ParsePeriod(filter.Month)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_PERIOD", err.Error())
		}
		// End() is midnight of the last day; stretch it across that whole
		// day so orders with a time-of-day component are not dropped.
		end := period.End().Add(24*time.Hour - time.Nanosecond)
		orders, err := s.orderRepo.FindByDateRange(ctx, period.Start(), end)
		if err != nil {
			return nil, err
		}
		return ToSalesOrderResponses(orders), nil
	}

	repoFilter := shared.DefaultFilter()
	repoFilter.Search = filter.Search
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}

	orders, err := s.orderRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	return ToSalesOrderResponses(orders), nil
}

// Update edits an existing sales order. The line items are rebuilt from
// the request with fresh name and price snapshots, but inventory is left
// untouched; only the original placement moves stock.
func (s *SalesOrderService) Update(ctx context.Context, id uuid.UUID, req UpdateSalesOrderRequest) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.ChangeOrderDate(req.OrderDate); err != nil {
		return nil, err
	}
	if err := order.ChangePaymentMethod(trade.PaymentMethod(req.PaymentMethod)); err != nil {
		return nil, err
	}

	for len(order.Items) > 0 {
		if err := order.RemoveItem(order.Items[0].ID); err != nil {
			return nil, err
		}
	}

	products, err := s.loadProducts(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		product := products[item.ProductID]
		if _, err := order.AddItem(
			product.ID,
			product.Name,
			item.Quantity,
			valueobject.NewMoneyHNL(product.SellingPrice),
		); err != nil {
			return nil, err
		}
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// Delete deletes a sales order together with its line items.
// The decremented inventory is not restored.
func (s *SalesOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

// loadProducts fetches every product referenced by the request lines in a
// single query and returns them keyed by ID. A line referencing a product
// that no longer exists fails the whole request.
func (s *SalesOrderService) loadProducts(ctx context.Context, items []OrderItemRequest) (map[uuid.UUID]catalog.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]catalog.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Order references a product that does not exist")
		}
	}
	return byID, nil
}

func (s *SalesOrderService) publishEvents(ctx context.Context, order *trade.SalesOrder) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range order.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	order.ClearDomainEvents()
}
