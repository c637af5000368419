package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// PurchaseOrderRepository implements trade.PurchaseOrderRepository using GORM
type PurchaseOrderRepository struct {
	gormRepository[trade.PurchaseOrder]
}

// NewPurchaseOrderRepository creates a new PurchaseOrderRepository
func NewPurchaseOrderRepository(db *gorm.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{newGormRepository[trade.PurchaseOrder](db, "number", "description")}
}

// FindByNumber retrieves a purchase order by its unique number
func (r *PurchaseOrderRepository) FindByNumber(ctx context.Context, number string) (*trade.PurchaseOrder, error) {
	var order trade.PurchaseOrder
	err := r.db.WithContext(ctx).First(&order, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SaveWithLock replaces the header guarded by its version column
func (r *PurchaseOrderRepository) SaveWithLock(ctx context.Context, order *trade.PurchaseOrder) error {
	current := order.Version
	order.IncrementVersion()

	tx := r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}).
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

// PurchaseOrderItemRepository implements trade.PurchaseOrderItemRepository using GORM
type PurchaseOrderItemRepository struct {
	gormRepository[trade.PurchaseOrderItem]
}

// NewPurchaseOrderItemRepository creates a new PurchaseOrderItemRepository
func NewPurchaseOrderItemRepository(db *gorm.DB) *PurchaseOrderItemRepository {
	return &PurchaseOrderItemRepository{newGormRepository[trade.PurchaseOrderItem](db)}
}

// FindByOrder retrieves all line items of an order
func (r *PurchaseOrderItemRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.PurchaseOrderItem, error) {
	var items []trade.PurchaseOrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CountByOrder counts the line items of an order
func (r *PurchaseOrderItemRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &trade.PurchaseOrderItem{}, "order_id", orderID)
}

// DeleteByOrder removes all line items of an order
func (r *PurchaseOrderItemRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&trade.PurchaseOrderItem{}, "order_id = ?", orderID).Error
}
