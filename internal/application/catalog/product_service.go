package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/babyheaven/backend/internal/domain/catalog"
	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/shared/valueobject"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// SetEventPublisher sets the event publisher for domain events
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this name already exists")
	}

	product, err := catalog.NewProduct(
		req.Name,
		valueobject.NewMoneyHNL(req.UnitPrice),
		valueobject.NewMoneyHNL(req.SellingPrice),
		valueobject.NewMoneyHNL(req.CostPrice),
		req.Inventory,
	)
	if err != nil {
		return nil, err
	}

	if req.ImageURL != "" {
		product.SetImageURL(req.ImageURL)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves all products matching the filter
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	repoFilter := toRepoFilter(filter)

	products, err := s.productRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// ListSellable retrieves products that can currently be sold.
// Products with no remaining inventory are excluded.
func (s *ProductService) ListSellable(ctx context.Context, filter ProductListFilter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindSellable(ctx, toRepoFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update updates a product's name, prices, and image.
// The inventory count is never changed here; edits must not create or
// destroy stock.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != product.Name {
		exists, err := s.productRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this name already exists")
		}
	}

	if err := product.Update(
		req.Name,
		valueobject.NewMoneyHNL(req.UnitPrice),
		valueobject.NewMoneyHNL(req.SellingPrice),
		valueobject.NewMoneyHNL(req.CostPrice),
	); err != nil {
		return nil, err
	}

	if req.ImageURL != nil {
		product.SetImageURL(*req.ImageURL)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// AdjustInventory sets the inventory count to an explicitly given value,
// for restocks and corrections after a physical count.
func (s *ProductService) AdjustInventory(ctx context.Context, id uuid.UUID, req AdjustInventoryRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.SetInventory(req.Inventory); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range product.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	product.ClearDomainEvents()
}

func toRepoFilter(filter ProductListFilter) shared.Filter {
	repoFilter := shared.DefaultFilter()
	repoFilter.Search = filter.Search
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}
	repoFilter.OrderBy = filter.OrderBy
	repoFilter.OrderDir = filter.OrderDir
	return repoFilter
}
