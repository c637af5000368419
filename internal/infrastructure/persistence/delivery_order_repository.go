package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// DeliveryOrderRepository implements trade.DeliveryOrderRepository using GORM
type DeliveryOrderRepository struct {
	gormRepository[trade.DeliveryOrder]
}

// NewDeliveryOrderRepository creates a new DeliveryOrderRepository
func NewDeliveryOrderRepository(db *gorm.DB) *DeliveryOrderRepository {
	return &DeliveryOrderRepository{newGormRepository[trade.DeliveryOrder](db, "number", "description")}
}

// FindByNumber retrieves a delivery order by its unique number
func (r *DeliveryOrderRepository) FindByNumber(ctx context.Context, number string) (*trade.DeliveryOrder, error) {
	var order trade.DeliveryOrder
	err := r.db.WithContext(ctx).First(&order, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CountBySalesOrder counts delivery orders referencing a sales order
func (r *DeliveryOrderRepository) CountBySalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &trade.DeliveryOrder{}, "sales_order_id", salesOrderID)
}
