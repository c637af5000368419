package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	domainseq "github.com/ims/backend/internal/domain/shared/sequence"
	"github.com/ims/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockSalesOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSalesOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByNumber(ctx context.Context, number string) (*trade.SalesOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) SaveWithLock(ctx context.Context, order *trade.SalesOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockSalesOrderRepository) CountByTax(ctx context.Context, taxID uuid.UUID) (int64, error) {
	args := m.Called(ctx, taxID)
	return args.Get(0).(int64), args.Error(1)
}

type MockSalesOrderItemRepository struct {
	mock.Mock
}

func (m *MockSalesOrderItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrderItem), args.Error(1)
}

func (m *MockSalesOrderItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesOrderItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesOrderItem), args.Error(1)
}

func (m *MockSalesOrderItemRepository) Save(ctx context.Context, item *trade.SalesOrderItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockSalesOrderItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSalesOrderItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesOrderItemRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.SalesOrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesOrderItem), args.Error(1)
}

func (m *MockSalesOrderItemRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesOrderItemRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByNumber(ctx context.Context, number string) (*trade.PurchaseOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) SaveWithLock(ctx context.Context, order *trade.PurchaseOrder) error {
	return m.Called(ctx, order).Error(0)
}

type MockPurchaseOrderItemRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseOrderItem), args.Error(1)
}

func (m *MockPurchaseOrderItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.PurchaseOrderItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.PurchaseOrderItem), args.Error(1)
}

func (m *MockPurchaseOrderItemRepository) Save(ctx context.Context, item *trade.PurchaseOrderItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockPurchaseOrderItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPurchaseOrderItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderItemRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.PurchaseOrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.PurchaseOrderItem), args.Error(1)
}

func (m *MockPurchaseOrderItemRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderItemRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

type MockDeliveryOrderRepository struct {
	mock.Mock
}

func (m *MockDeliveryOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.DeliveryOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) Save(ctx context.Context, order *trade.DeliveryOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockDeliveryOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDeliveryOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryOrderRepository) FindByNumber(ctx context.Context, number string) (*trade.DeliveryOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) CountBySalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error) {
	args := m.Called(ctx, salesOrderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockSalesReturnRepository struct {
	mock.Mock
}

func (m *MockSalesReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesReturn, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesReturn), args.Error(1)
}

func (m *MockSalesReturnRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesReturn, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesReturn), args.Error(1)
}

func (m *MockSalesReturnRepository) Save(ctx context.Context, ret *trade.SalesReturn) error {
	return m.Called(ctx, ret).Error(0)
}

func (m *MockSalesReturnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSalesReturnRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesReturnRepository) FindByNumber(ctx context.Context, number string) (*trade.SalesReturn, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesReturn), args.Error(1)
}

func (m *MockSalesReturnRepository) CountByDeliveryOrder(ctx context.Context, deliveryOrderID uuid.UUID) (int64, error) {
	args := m.Called(ctx, deliveryOrderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) RateFor(ctx context.Context, taxID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, taxID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Next(ctx context.Context, class domainseq.Class) (string, error) {
	args := m.Called(ctx, class)
	return args.String(0), args.Error(1)
}
