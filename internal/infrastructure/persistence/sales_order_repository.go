package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/babyheaven/backend/internal/domain/catalog"
	"github.com/babyheaven/backend/internal/domain/shared"
	"github.com/babyheaven/backend/internal/domain/trade"
	"github.com/babyheaven/backend/internal/infrastructure/persistence/models"
)

// GormSalesOrderRepository implements SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindByID finds a sales order with its line items by ID
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	var model models.SalesOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrderNumber finds a sales order by its order number
func (r *GormSalesOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.SalesOrder, error) {
	var model models.SalesOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all sales orders matching the filter, newest first
func (r *GormSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesOrder, error) {
	query := r.db.WithContext(ctx).Model(&models.SalesOrderModel{}).Preload("Items")

	if filter.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("order_date DESC, order_number DESC")

	var rows []models.SalesOrderModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainOrders(rows), nil
}

// FindByDateRange finds sales orders whose order date falls within
// [start, end], inclusive on both ends
func (r *GormSalesOrderRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]trade.SalesOrder, error) {
	var rows []models.SalesOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_date >= ? AND order_date <= ?", start, end).
		Order("order_date ASC, order_number ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainOrders(rows), nil
}

// Place atomically numbers and persists a new order and decrements the
// inventory of every referenced product in the same transaction. On any
// failure nothing is persisted and no inventory changes.
func (r *GormSalesOrderRepository) Place(ctx context.Context, order *trade.SalesOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The order number is derived from the current order count, so it
		// must be computed inside the transaction to stay collision-free.
		var count int64
		if err := tx.Model(&models.SalesOrderModel{}).Count(&count).Error; err != nil {
			return err
		}
		if err := order.AssignOrderNumber(trade.NextOrderNumber(count)); err != nil {
			return err
		}

		model := models.SalesOrderModelFromDomain(order)
		if err := tx.Create(model).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			result := tx.Model(&catalog.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("inventory", gorm.Expr("inventory - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return shared.NewDomainError("PRODUCT_NOT_FOUND", "Order references a product that does not exist")
			}
		}

		return nil
	})
}

// Update persists changes to an existing order and its line items.
// Inventory is never touched on edit.
func (r *GormSalesOrderRepository) Update(ctx context.Context, order *trade.SalesOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.SalesOrderModelFromDomain(order)

		// Replace the line items wholesale; edits can add, remove, or
		// change any of them.
		if err := tx.Where("order_id = ?", order.ID).
			Delete(&models.SalesOrderItemModel{}).Error; err != nil {
			return err
		}

		if err := tx.Save(model).Error; err != nil {
			return err
		}

		return nil
	})
}

// Delete deletes a sales order together with its line items
func (r *GormSalesOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).
			Delete(&models.SalesOrderItemModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.SalesOrderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts all persisted sales orders
func (r *GormSalesOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SalesOrderModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByOrderNumber checks if an order number is already taken
func (r *GormSalesOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SalesOrderModel{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func toDomainOrders(rows []models.SalesOrderModel) []trade.SalesOrder {
	orders := make([]trade.SalesOrder, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders
}

// Ensure GormSalesOrderRepository implements SalesOrderRepository
var _ trade.SalesOrderRepository = (*GormSalesOrderRepository)(nil)
