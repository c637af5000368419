package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/shared/integrity"
	"github.com/ims/backend/internal/domain/shared/sequence"
	"github.com/ims/backend/internal/domain/trade"
)

// SalesOrderService handles sales order business operations.
// All mutations of one order run under a per-order lock so the
// guard-then-delete and mutate-then-recalculate sequences cannot
// interleave with each other.
type SalesOrderService struct {
	orders    trade.SalesOrderRepository
	items     trade.SalesOrderItemRepository
	recalc    *Recalculator
	numbers   sequence.Generator
	guard     *integrity.Guard
	publisher shared.EventPublisher
	locks     orderLocks
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	orders trade.SalesOrderRepository,
	items trade.SalesOrderItemRepository,
	deliveries trade.DeliveryOrderRepository,
	recalc *Recalculator,
	numbers sequence.Generator,
) *SalesOrderService {
	return &SalesOrderService{
		orders:  orders,
		items:   items,
		recalc:  recalc,
		numbers: numbers,
		guard: integrity.NewGuard(integrity.KindSalesOrder, integrity.Rule{
			DependentKind: integrity.KindDeliveryOrder,
			Count:         deliveries.CountBySalesOrder,
		}),
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *SalesOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// Create creates a new sales order with its items and recalculates
// the totals once the items are persisted
func (s *SalesOrderService) Create(ctx context.Context, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	number, err := s.numbers.Next(ctx, sequence.SalesOrders)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewSalesOrder(number, req.OrderDate, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if req.TaxID != nil {
		order.SetTax(req.TaxID)
	}
	if req.Description != "" {
		order.SetDescription(req.Description)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	for _, input := range req.Items {
		item, err := trade.NewSalesOrderItem(order.ID, input.ProductID, input.UnitPrice, input.Quantity)
		if err != nil {
			return nil, err
		}
		if err := s.items.Save(ctx, item); err != nil {
			return nil, err
		}
	}

	if err := s.recalc.RecalculateSalesOrder(ctx, order.ID); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	return s.GetByID(ctx, order.ID)
}

// GetByID retrieves a sales order with its items
func (s *SalesOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.items.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToSalesOrderResponse(order, items)
	return &resp, nil
}

// GetByNumber retrieves a sales order by its human-readable number
func (s *SalesOrderService) GetByNumber(ctx context.Context, number string) (*SalesOrderResponse, error) {
	order, err := s.orders.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, order.ID)
}

// List retrieves sales orders with filtering and pagination
func (s *SalesOrderService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[SalesOrderResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[SalesOrderResponse]{}, err
	}
	total, err := s.orders.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[SalesOrderResponse]{}, err
	}

	responses := make([]SalesOrderResponse, 0, len(orders))
	for idx := range orders {
		responses = append(responses, ToSalesOrderResponse(&orders[idx], nil))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update updates the sales order header. A changed tax reference
// triggers a recalculation of the totals.
func (s *SalesOrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdateSalesOrderRequest) (*SalesOrderResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	taxChanged := false
	if req.RemoveTax {
		taxChanged = order.SetTax(nil)
	} else if req.TaxID != nil {
		taxChanged = order.SetTax(req.TaxID)
	}
	if req.Description != nil {
		order.SetDescription(*req.Description)
	}

	if err := s.orders.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	if taxChanged {
		if err := s.recalc.RecalculateSalesOrder(ctx, orderID); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, orderID)
}

// Complete marks the order as completed
func (s *SalesOrderService) Complete(ctx context.Context, orderID uuid.UUID) error {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := order.Complete(); err != nil {
		return err
	}
	return s.orders.SaveWithLock(ctx, order)
}

// Cancel marks the order as cancelled
func (s *SalesOrderService) Cancel(ctx context.Context, orderID uuid.UUID) error {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := order.Cancel(); err != nil {
		return err
	}
	return s.orders.SaveWithLock(ctx, order)
}

// Delete removes a sales order. Deletion is refused while delivery
// orders still reference it; otherwise the line items are cascade-
// deleted before the header.
func (s *SalesOrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	result, err := s.guard.CanDelete(ctx, orderID)
	if err != nil {
		return err
	}
	if !result.Allowed {
		return result.DomainError(integrity.KindSalesOrder)
	}

	if err := s.items.DeleteByOrder(ctx, orderID); err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}

	order.AddDomainEvent(trade.NewSalesOrderDeletedEvent(order))
	s.publishEvents(ctx, order)

	return nil
}

// AddItem adds a line item to a sales order and recalculates the
// totals. The recalculation is not skippable: the denormalized fields
// are the only place totals surface to callers.
func (s *SalesOrderService) AddItem(ctx context.Context, orderID uuid.UUID, req AddOrderItemRequest) (*SalesOrderResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	item, err := trade.NewSalesOrderItem(orderID, req.ProductID, req.UnitPrice, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	if err := s.recalc.RecalculateSalesOrder(ctx, orderID); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, orderID)
}

// UpdateItem changes a line item's price or quantity and recalculates
// the totals
func (s *SalesOrderService) UpdateItem(ctx context.Context, orderID, itemID uuid.UUID, req UpdateOrderItemRequest) (*SalesOrderResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OrderID != orderID {
		return nil, shared.ErrNotFound
	}

	if req.Quantity != nil {
		if err := item.UpdateQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.UnitPrice != nil {
		if err := item.UpdateUnitPrice(*req.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	if err := s.recalc.RecalculateSalesOrder(ctx, orderID); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, orderID)
}

// DeleteItem removes a line item and recalculates the totals
func (s *SalesOrderService) DeleteItem(ctx context.Context, orderID, itemID uuid.UUID) error {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.OrderID != orderID {
		return shared.ErrNotFound
	}

	if err := s.items.Delete(ctx, itemID); err != nil {
		return err
	}

	return s.recalc.RecalculateSalesOrder(ctx, orderID)
}

// Recalculate recomputes the order totals from its current items
func (s *SalesOrderService) Recalculate(ctx context.Context, orderID uuid.UUID) error {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	return s.recalc.RecalculateSalesOrder(ctx, orderID)
}

// publishEvents publishes the aggregate's pending events. Delivery is
// best effort; the state change is already durable.
func (s *SalesOrderService) publishEvents(ctx context.Context, order *trade.SalesOrder) {
	if s.publisher == nil {
		return
	}
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
	order.ClearDomainEvents()
}
