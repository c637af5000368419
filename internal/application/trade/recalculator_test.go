package trade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type recalcFixture struct {
	salesOrders    *MockSalesOrderRepository
	salesItems     *MockSalesOrderItemRepository
	purchaseOrders *MockPurchaseOrderRepository
	purchaseItems  *MockPurchaseOrderItemRepository
	rates          *MockRateResolver
	recalc         *Recalculator
}

func newRecalcFixture() *recalcFixture {
	f := &recalcFixture{
		salesOrders:    new(MockSalesOrderRepository),
		salesItems:     new(MockSalesOrderItemRepository),
		purchaseOrders: new(MockPurchaseOrderRepository),
		purchaseItems:  new(MockPurchaseOrderItemRepository),
		rates:          new(MockRateResolver),
	}
	f.recalc = NewRecalculator(f.salesOrders, f.salesItems, f.purchaseOrders, f.purchaseItems, f.rates)
	return f
}

func salesItem(t *testing.T, orderID uuid.UUID, price string, qty int64) trade.SalesOrderItem {
	t.Helper()
	item, err := trade.NewSalesOrderItem(orderID, uuid.New(), d(price), qty)
	require.NoError(t, err)
	return *item
}

func TestRecalculateSalesOrder(t *testing.T) {
	f := newRecalcFixture()
	taxID := uuid.New()

	order, err := trade.NewSalesOrder("SO-00001", time.Now(), uuid.New())
	require.NoError(t, err)
	order.SetTax(&taxID)
	order.ClearDomainEvents()

	items := []trade.SalesOrderItem{
		salesItem(t, order.ID, "100", 1),
		salesItem(t, order.ID, "75", 2),
	}

	f.salesOrders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.salesItems.On("FindByOrder", mock.Anything, order.ID).Return(items, nil)
	f.rates.On("RateFor", mock.Anything, taxID).Return(d("10"), nil)
	f.salesOrders.On("SaveWithLock", mock.Anything, mock.MatchedBy(func(o *trade.SalesOrder) bool {
		return o.Subtotal.Equal(d("250")) &&
			o.TaxAmount.Equal(d("25.00")) &&
			o.GrandTotal.Equal(d("275.00"))
	})).Return(nil)

	require.NoError(t, f.recalc.RecalculateSalesOrder(context.Background(), order.ID))

	f.salesOrders.AssertExpectations(t)
	f.rates.AssertExpectations(t)

	events := order.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, trade.EventSalesOrderRecalculated, events[0].EventType())
}

func TestRecalculateSalesOrder_NoTaxSkipsResolver(t *testing.T) {
	f := newRecalcFixture()

	order, err := trade.NewSalesOrder("SO-00002", time.Now(), uuid.New())
	require.NoError(t, err)

	f.salesOrders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.salesItems.On("FindByOrder", mock.Anything, order.ID).
		Return([]trade.SalesOrderItem{salesItem(t, order.ID, "40", 1)}, nil)
	f.salesOrders.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.recalc.RecalculateSalesOrder(context.Background(), order.ID))

	f.rates.AssertNotCalled(t, "RateFor", mock.Anything, mock.Anything)
	assert.True(t, order.TaxAmount.IsZero())
	assert.True(t, order.GrandTotal.Equal(d("40")))
}

func TestRecalculateSalesOrder_MissingOrderIsNoOp(t *testing.T) {
	f := newRecalcFixture()
	orderID := uuid.New()

	f.salesOrders.On("FindByID", mock.Anything, orderID).Return(nil, shared.ErrNotFound)

	require.NoError(t, f.recalc.RecalculateSalesOrder(context.Background(), orderID))

	f.salesItems.AssertNotCalled(t, "FindByOrder", mock.Anything, mock.Anything)
	f.salesOrders.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestRecalculateSalesOrder_NoItemsZeroesTotals(t *testing.T) {
	f := newRecalcFixture()

	order, err := trade.NewSalesOrder("SO-00003", time.Now(), uuid.New())
	require.NoError(t, err)
	order.ApplyTotals(trade.OrderTotals{Subtotal: d("99"), TaxAmount: d("9.90"), GrandTotal: d("108.90")})

	f.salesOrders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.salesItems.On("FindByOrder", mock.Anything, order.ID).Return([]trade.SalesOrderItem{}, nil)
	f.salesOrders.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.recalc.RecalculateSalesOrder(context.Background(), order.ID))

	assert.True(t, order.Totals().Equals(trade.ZeroTotals()))
}

func TestRecalculateSalesOrder_ResolverErrorAborts(t *testing.T) {
	f := newRecalcFixture()
	taxID := uuid.New()
	boom := errors.New("tax lookup failed")

	order, err := trade.NewSalesOrder("SO-00004", time.Now(), uuid.New())
	require.NoError(t, err)
	order.SetTax(&taxID)

	f.salesOrders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.salesItems.On("FindByOrder", mock.Anything, order.ID).
		Return([]trade.SalesOrderItem{salesItem(t, order.ID, "10", 1)}, nil)
	f.rates.On("RateFor", mock.Anything, taxID).Return(decimal.Zero, boom)

	assert.ErrorIs(t, f.recalc.RecalculateSalesOrder(context.Background(), order.ID), boom)
	f.salesOrders.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestRecalculateSalesOrder_Idempotent(t *testing.T) {
	f := newRecalcFixture()
	taxID := uuid.New()

	order, err := trade.NewSalesOrder("SO-00005", time.Now(), uuid.New())
	require.NoError(t, err)
	order.SetTax(&taxID)

	items := []trade.SalesOrderItem{
		salesItem(t, order.ID, "100", 2),
		salesItem(t, order.ID, "50", 1),
	}

	f.salesOrders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.salesItems.On("FindByOrder", mock.Anything, order.ID).Return(items, nil)
	f.rates.On("RateFor", mock.Anything, taxID).Return(d("10"), nil)
	f.salesOrders.On("SaveWithLock", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.recalc.RecalculateSalesOrder(context.Background(), order.ID))
	first := order.Totals()

	require.NoError(t, f.recalc.RecalculateSalesOrder(context.Background(), order.ID))

	assert.True(t, order.Totals().Equals(first), "unchanged items must recalculate to the same totals")
	assert.True(t, order.Subtotal.Equal(d("250")))
	assert.True(t, order.TaxAmount.Equal(d("25.00")))
	assert.True(t, order.GrandTotal.Equal(d("275.00")))
	f.salesOrders.AssertNumberOfCalls(t, "SaveWithLock", 2)
}

func TestRecalculatePurchaseOrder(t *testing.T) {
	f := newRecalcFixture()

	order, err := trade.NewPurchaseOrder("PO-001", time.Now(), uuid.New())
	require.NoError(t, err)

	item, err := trade.NewPurchaseOrderItem(order.ID, uuid.New(), d("19.99"), 3)
	require.NoError(t, err)

	f.purchaseOrders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	f.purchaseItems.On("FindByOrder", mock.Anything, order.ID).
		Return([]trade.PurchaseOrderItem{*item}, nil)
	f.purchaseOrders.On("SaveWithLock", mock.Anything, mock.MatchedBy(func(o *trade.PurchaseOrder) bool {
		return o.Subtotal.Equal(d("59.97")) && o.GrandTotal.Equal(d("59.97"))
	})).Return(nil)

	require.NoError(t, f.recalc.RecalculatePurchaseOrder(context.Background(), order.ID))

	f.purchaseOrders.AssertExpectations(t)
}
