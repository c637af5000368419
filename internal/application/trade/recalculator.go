package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/finance"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// Recalculator recomputes the denormalized monetary aggregates of an
// order header from its current line items and tax rate. It is the
// only writer of those fields.
//
// The caller serializes invocations per order id; the recalculator
// itself performs plain load-compute-replace.
type Recalculator struct {
	salesOrders    trade.SalesOrderRepository
	salesItems     trade.SalesOrderItemRepository
	purchaseOrders trade.PurchaseOrderRepository
	purchaseItems  trade.PurchaseOrderItemRepository
	rates          finance.RateResolver
}

// NewRecalculator creates a new Recalculator
func NewRecalculator(
	salesOrders trade.SalesOrderRepository,
	salesItems trade.SalesOrderItemRepository,
	purchaseOrders trade.PurchaseOrderRepository,
	purchaseItems trade.PurchaseOrderItemRepository,
	rates finance.RateResolver,
) *Recalculator {
	return &Recalculator{
		salesOrders:    salesOrders,
		salesItems:     salesItems,
		purchaseOrders: purchaseOrders,
		purchaseItems:  purchaseItems,
		rates:          rates,
	}
}

// RecalculateSalesOrder recomputes and persists the totals of a sales
// order. A missing order is a no-op: the order was deleted between the
// item mutation and this call.
func (r *Recalculator) RecalculateSalesOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := r.salesOrders.FindByID(ctx, orderID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	items, err := r.salesItems.FindByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	amounts := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		amounts = append(amounts, item.Amount)
	}

	rate, err := r.resolveRate(ctx, order.TaxID)
	if err != nil {
		return err
	}

	order.ApplyTotals(trade.ComputeTotals(amounts, rate))
	order.AddDomainEvent(trade.NewSalesOrderRecalculatedEvent(order))

	return r.salesOrders.SaveWithLock(ctx, order)
}

// RecalculatePurchaseOrder recomputes and persists the totals of a
// purchase order. A missing order is a no-op.
func (r *Recalculator) RecalculatePurchaseOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := r.purchaseOrders.FindByID(ctx, orderID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	items, err := r.purchaseItems.FindByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	amounts := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		amounts = append(amounts, item.Amount)
	}

	rate, err := r.resolveRate(ctx, order.TaxID)
	if err != nil {
		return err
	}

	order.ApplyTotals(trade.ComputeTotals(amounts, rate))

	return r.purchaseOrders.SaveWithLock(ctx, order)
}

// resolveRate returns the tax rate for an optional tax reference.
// A nil reference short-circuits to zero without touching the resolver.
func (r *Recalculator) resolveRate(ctx context.Context, taxID *uuid.UUID) (decimal.Decimal, error) {
	if taxID == nil {
		return decimal.Zero, nil
	}
	return r.rates.RateFor(ctx, *taxID)
}
