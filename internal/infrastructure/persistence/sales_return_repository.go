package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// SalesReturnRepository implements trade.SalesReturnRepository using GORM
type SalesReturnRepository struct {
	gormRepository[trade.SalesReturn]
}

// NewSalesReturnRepository creates a new SalesReturnRepository
func NewSalesReturnRepository(db *gorm.DB) *SalesReturnRepository {
	return &SalesReturnRepository{newGormRepository[trade.SalesReturn](db, "number", "reason")}
}

// FindByNumber retrieves a sales return by its unique number
func (r *SalesReturnRepository) FindByNumber(ctx context.Context, number string) (*trade.SalesReturn, error) {
	var ret trade.SalesReturn
	err := r.db.WithContext(ctx).First(&ret, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

// CountByDeliveryOrder counts sales returns referencing a delivery order
func (r *SalesReturnRepository) CountByDeliveryOrder(ctx context.Context, deliveryOrderID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &trade.SalesReturn{}, "delivery_order_id", deliveryOrderID)
}
