package trade

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	domainseq "github.com/ims/backend/internal/domain/shared/sequence"
	"github.com/ims/backend/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type salesOrderFixture struct {
	orders     *MockSalesOrderRepository
	items      *MockSalesOrderItemRepository
	deliveries *MockDeliveryOrderRepository
	numbers    *MockGenerator
	rates      *MockRateResolver
	svc        *SalesOrderService
}

func newSalesOrderFixture() *salesOrderFixture {
	f := &salesOrderFixture{
		orders:     new(MockSalesOrderRepository),
		items:      new(MockSalesOrderItemRepository),
		deliveries: new(MockDeliveryOrderRepository),
		numbers:    new(MockGenerator),
		rates:      new(MockRateResolver),
	}
	recalc := NewRecalculator(f.orders, f.items, new(MockPurchaseOrderRepository), new(MockPurchaseOrderItemRepository), f.rates)
	f.svc = NewSalesOrderService(f.orders, f.items, f.deliveries, recalc, f.numbers)
	return f
}

func TestSalesOrderService_Create(t *testing.T) {
	f := newSalesOrderFixture()
	customerID := uuid.New()

	f.numbers.On("Next", mock.Anything, domainseq.SalesOrders).Return("SO-00001", nil)

	// the recalculation and the final read-back load the order Save
	// persisted, so wire FindByID up once the saved instance is known
	f.orders.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved := args.Get(1).(*trade.SalesOrder)
		f.orders.On("FindByID", mock.Anything, saved.ID).Return(saved, nil)
	}).Return(nil)
	f.orders.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)
	f.items.On("FindByOrder", mock.Anything, mock.Anything).Return([]trade.SalesOrderItem{}, nil)

	resp, err := f.svc.Create(context.Background(), CreateSalesOrderRequest{
		CustomerID: customerID,
		OrderDate:  time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, "SO-00001", resp.Number)
	assert.Equal(t, customerID, resp.CustomerID)
	assert.Equal(t, trade.SalesOrderOpen, resp.Status)
	assert.True(t, resp.Subtotal.IsZero())
	assert.True(t, resp.GrandTotal.IsZero())
}

func TestSalesOrderService_AddItem_Recalculates(t *testing.T) {
	f := newSalesOrderFixture()

	order, err := trade.NewSalesOrder("SO-00001", time.Now(), uuid.New())
	require.NoError(t, err)
	order.ClearDomainEvents()

	f.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.items.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.items.On("FindByOrder", mock.Anything, order.ID).
		Return([]trade.SalesOrderItem{salesItem(t, order.ID, "25", 4)}, nil)
	f.orders.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.svc.AddItem(context.Background(), order.ID, AddOrderItemRequest{
		ProductID: uuid.New(),
		UnitPrice: d("25"),
		Quantity:  4,
	})

	require.NoError(t, err)
	assert.True(t, resp.Subtotal.Equal(d("100")))
	f.orders.AssertCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestSalesOrderService_Create_NumberGenerationFails(t *testing.T) {
	f := newSalesOrderFixture()

	f.numbers.On("Next", mock.Anything, domainseq.SalesOrders).Return("", assert.AnError)

	_, err := f.svc.Create(context.Background(), CreateSalesOrderRequest{
		CustomerID: uuid.New(),
		OrderDate:  time.Now(),
	})

	assert.ErrorIs(t, err, assert.AnError)
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSalesOrderService_Delete_BlockedByDeliveries(t *testing.T) {
	f := newSalesOrderFixture()

	order, err := trade.NewSalesOrder("SO-00001", time.Now(), uuid.New())
	require.NoError(t, err)

	f.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.deliveries.On("CountBySalesOrder", mock.Anything, order.ID).Return(int64(2), nil)

	err = f.svc.Delete(context.Background(), order.ID)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "REFERENTIAL_INTEGRITY", domainErr.Code)
	f.items.AssertNotCalled(t, "DeleteByOrder", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSalesOrderService_Delete_CascadesItems(t *testing.T) {
	f := newSalesOrderFixture()

	order, err := trade.NewSalesOrder("SO-00001", time.Now(), uuid.New())
	require.NoError(t, err)

	f.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.deliveries.On("CountBySalesOrder", mock.Anything, order.ID).Return(int64(0), nil)
	f.items.On("DeleteByOrder", mock.Anything, order.ID).Return(nil)
	f.orders.On("Delete", mock.Anything, order.ID).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), order.ID))

	f.items.AssertCalled(t, "DeleteByOrder", mock.Anything, order.ID)
	f.orders.AssertCalled(t, "Delete", mock.Anything, order.ID)
}

func TestSalesOrderService_Update_TaxChangeTriggersRecalculation(t *testing.T) {
	f := newSalesOrderFixture()
	taxID := uuid.New()

	order, err := trade.NewSalesOrder("SO-00001", time.Now(), uuid.New())
	require.NoError(t, err)
	order.ClearDomainEvents()

	f.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.orders.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)
	f.items.On("FindByOrder", mock.Anything, order.ID).
		Return([]trade.SalesOrderItem{salesItem(t, order.ID, "100", 1)}, nil)
	f.rates.On("RateFor", mock.Anything, taxID).Return(d("20"), nil)

	resp, err := f.svc.Update(context.Background(), order.ID, UpdateSalesOrderRequest{TaxID: &taxID})

	require.NoError(t, err)
	f.rates.AssertCalled(t, "RateFor", mock.Anything, taxID)
	assert.True(t, resp.TaxAmount.Equal(d("20.00")))
	assert.True(t, resp.GrandTotal.Equal(d("120.00")))
}

func TestSalesOrderService_Update_SameTaxSkipsRecalculation(t *testing.T) {
	f := newSalesOrderFixture()
	taxID := uuid.New()

	order, err := trade.NewSalesOrder("SO-00001", time.Now(), uuid.New())
	require.NoError(t, err)
	order.SetTax(&taxID)
	order.ClearDomainEvents()

	f.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.orders.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)
	f.items.On("FindByOrder", mock.Anything, order.ID).Return([]trade.SalesOrderItem{}, nil)

	same := taxID
	_, err = f.svc.Update(context.Background(), order.ID, UpdateSalesOrderRequest{TaxID: &same})

	require.NoError(t, err)
	f.rates.AssertNotCalled(t, "RateFor", mock.Anything, mock.Anything)
}

func TestSalesOrderService_UpdateItem_RejectsForeignItem(t *testing.T) {
	f := newSalesOrderFixture()
	orderID := uuid.New()

	foreign := salesItem(t, uuid.New(), "10", 1)
	f.items.On("FindByID", mock.Anything, foreign.ID).Return(&foreign, nil)

	qty := int64(5)
	_, err := f.svc.UpdateItem(context.Background(), orderID, foreign.ID, UpdateOrderItemRequest{Quantity: &qty})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	f.items.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSalesOrderService_DeleteItem_Recalculates(t *testing.T) {
	f := newSalesOrderFixture()

	order, err := trade.NewSalesOrder("SO-00001", time.Now(), uuid.New())
	require.NoError(t, err)
	order.ClearDomainEvents()
	item := salesItem(t, order.ID, "10", 1)

	f.items.On("FindByID", mock.Anything, item.ID).Return(&item, nil)
	f.items.On("Delete", mock.Anything, item.ID).Return(nil)
	f.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.items.On("FindByOrder", mock.Anything, order.ID).Return([]trade.SalesOrderItem{}, nil)
	f.orders.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.svc.DeleteItem(context.Background(), order.ID, item.ID))

	assert.True(t, order.Totals().Equals(trade.ZeroTotals()))
	f.orders.AssertCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}
