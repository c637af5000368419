package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
)

// SalesOrderRepository persists sales order headers
type SalesOrderRepository interface {
	shared.Repository[SalesOrder]
	FindByNumber(ctx context.Context, number string) (*SalesOrder, error)
	// SaveWithLock saves the header with optimistic version locking,
	// returning shared.ErrConcurrencyConflict on a stale version
	SaveWithLock(ctx context.Context, order *SalesOrder) error
	// CountByTax counts sales orders referencing a tax
	CountByTax(ctx context.Context, taxID uuid.UUID) (int64, error)
}

// SalesOrderItemRepository persists sales order line items
type SalesOrderItemRepository interface {
	shared.Repository[SalesOrderItem]
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]SalesOrderItem, error)
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	// DeleteByOrder removes all items of an order (cascade)
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) error
}

// PurchaseOrderRepository persists purchase order headers
type PurchaseOrderRepository interface {
	shared.Repository[PurchaseOrder]
	FindByNumber(ctx context.Context, number string) (*PurchaseOrder, error)
	SaveWithLock(ctx context.Context, order *PurchaseOrder) error
}

// PurchaseOrderItemRepository persists purchase order line items
type PurchaseOrderItemRepository interface {
	shared.Repository[PurchaseOrderItem]
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]PurchaseOrderItem, error)
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) error
}

// DeliveryOrderRepository persists delivery orders
type DeliveryOrderRepository interface {
	shared.Repository[DeliveryOrder]
	FindByNumber(ctx context.Context, number string) (*DeliveryOrder, error)
	// CountBySalesOrder counts delivery orders referencing a sales order
	CountBySalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error)
}

// SalesReturnRepository persists sales returns
type SalesReturnRepository interface {
	shared.Repository[SalesReturn]
	FindByNumber(ctx context.Context, number string) (*SalesReturn, error)
	// CountByDeliveryOrder counts sales returns referencing a delivery order
	CountByDeliveryOrder(ctx context.Context, deliveryOrderID uuid.UUID) (int64, error)
}
