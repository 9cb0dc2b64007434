package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/babyheaven/backend/internal/domain/catalog"
	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/trade"
)

// ReorderAlertHandler reacts to placed sales orders by logging a warning
// for every product whose inventory has reached zero or below, so the
// shop owner sees what needs restocking.
type ReorderAlertHandler struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewReorderAlertHandler creates a new ReorderAlertHandler
func NewReorderAlertHandler(productRepo catalog.ProductRepository, logger *zap.Logger) *ReorderAlertHandler {
	return &ReorderAlertHandler{
		productRepo: productRepo,
		logger:      logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *ReorderAlertHandler) EventTypes() []string {
	return []string{trade.EventTypeSalesOrderPlaced}
}

// Handle checks the catalog for sold-out products after a sale
func (h *ReorderAlertHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	products, err := h.productRepo.FindOutOfStock(ctx)
	if err != nil {
		return err
	}

	for _, product := range products {
		h.logger.Warn("Product needs reorder",
			zap.String("product_id", product.ID.String()),
			zap.String("name", product.Name),
			zap.Int("inventory", product.Inventory),
			zap.String("order_id", event.AggregateID().String()),
		)
	}

	return nil
}

var _ shared.EventHandler = (*ReorderAlertHandler)(nil)
