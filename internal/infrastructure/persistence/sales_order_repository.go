package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// SalesOrderRepository implements trade.SalesOrderRepository using GORM
type SalesOrderRepository struct {
	gormRepository[trade.SalesOrder]
}

// NewSalesOrderRepository creates a new SalesOrderRepository
func NewSalesOrderRepository(db *gorm.DB) *SalesOrderRepository {
	return &SalesOrderRepository{newGormRepository[trade.SalesOrder](db, "number", "description")}
}

// FindByNumber retrieves a sales order by its unique number
func (r *SalesOrderRepository) FindByNumber(ctx context.Context, number string) (*trade.SalesOrder, error) {
	var order trade.SalesOrder
	err := r.db.WithContext(ctx).First(&order, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SaveWithLock replaces the header guarded by its version column.
// A stale version matches zero rows and surfaces as a concurrency
// conflict without touching the stored record.
func (r *SalesOrderRepository) SaveWithLock(ctx context.Context, order *trade.SalesOrder) error {
	current := order.Version
	order.IncrementVersion()

	tx := r.db.WithContext(ctx).Model(&trade.SalesOrder{}).
		Where("id = ? AND version = ?", order.ID, current).
		Select("*").Omit("created_at").Updates(order)
	if tx.Error != nil {
		order.Version = current
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		order.Version = current
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// CountByTax counts sales orders referencing a tax
func (r *SalesOrderRepository) CountByTax(ctx context.Context, taxID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &trade.SalesOrder{}, "tax_id", taxID)
}

// SalesOrderItemRepository implements trade.SalesOrderItemRepository using GORM
type SalesOrderItemRepository struct {
	gormRepository[trade.SalesOrderItem]
}

// NewSalesOrderItemRepository creates a new SalesOrderItemRepository
func NewSalesOrderItemRepository(db *gorm.DB) *SalesOrderItemRepository {
	return &SalesOrderItemRepository{newGormRepository[trade.SalesOrderItem](db)}
}

// FindByOrder retrieves all line items of an order
func (r *SalesOrderItemRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.SalesOrderItem, error) {
	var items []trade.SalesOrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CountByOrder counts the line items of an order
func (r *SalesOrderItemRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &trade.SalesOrderItem{}, "order_id", orderID)
}

// DeleteByOrder removes all line items of an order
func (r *SalesOrderItemRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&trade.SalesOrderItem{}, "order_id = ?", orderID).Error
}
