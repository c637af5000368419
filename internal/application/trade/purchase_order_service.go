package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/shared/sequence"
	"github.com/ims/backend/internal/domain/trade"
)

// PurchaseOrderService handles purchase order business operations.
// Status changes route exclusively through the fulfillment state
// machine; there is no way to set the status field directly.
type PurchaseOrderService struct {
	orders    trade.PurchaseOrderRepository
	items     trade.PurchaseOrderItemRepository
	recalc    *Recalculator
	numbers   sequence.Generator
	publisher shared.EventPublisher
	locks     orderLocks
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orders trade.PurchaseOrderRepository,
	items trade.PurchaseOrderItemRepository,
	recalc *Recalculator,
	numbers sequence.Generator,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orders:  orders,
		items:   items,
		recalc:  recalc,
		numbers: numbers,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *PurchaseOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// Create creates a new purchase order with its items in PENDING status
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	number, err := s.numbers.Next(ctx, sequence.PurchaseOrders)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewPurchaseOrder(number, req.OrderDate, req.VendorID)
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
		item, err := trade.NewPurchaseOrderItem(order.ID, input.ProductID, input.UnitPrice, input.Quantity)
		if err != nil {
			return nil, err
		}
		if err := s.items.Save(ctx, item); err != nil {
			return nil, err
		}
	}

	if err := s.recalc.RecalculatePurchaseOrder(ctx, order.ID); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	return s.GetByID(ctx, order.ID)
}

// GetByID retrieves a purchase order with its items
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.items.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToPurchaseOrderResponse(order, items)
	return &resp, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[PurchaseOrderResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[PurchaseOrderResponse]{}, err
	}
	total, err := s.orders.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[PurchaseOrderResponse]{}, err
	}

	responses := make([]PurchaseOrderResponse, 0, len(orders))
	for idx := range orders {
		responses = append(responses, ToPurchaseOrderResponse(&orders[idx], nil))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update updates the purchase order header. A changed tax reference
// triggers a recalculation of the totals.
func (s *PurchaseOrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
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
		if err := s.recalc.RecalculatePurchaseOrder(ctx, orderID); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, orderID)
}

// UpdateStatus moves the purchase order to the target fulfillment
// status through the state machine. Illegal transitions are rejected
// before any mutation.
func (s *PurchaseOrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, target trade.FulfillmentStatus) (*PurchaseOrderResponse, error) {
	if !target.IsValid() {
		return nil, shared.NewDomainErrorf("INVALID_STATUS", "Unknown fulfillment status %q", string(target))
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.TransitionTo(target); err != nil {
		return nil, err
	}

	if err := s.orders.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	return s.GetByID(ctx, orderID)
}

// Delete removes a purchase order, cascade-deleting its line items
func (s *PurchaseOrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := s.items.DeleteByOrder(ctx, orderID); err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}

	order.AddDomainEvent(trade.NewPurchaseOrderDeletedEvent(order))
	s.publishEvents(ctx, order)

	return nil
}

// AddItem adds a line item to a purchase order and recalculates the totals
func (s *PurchaseOrderService) AddItem(ctx context.Context, orderID uuid.UUID, req AddOrderItemRequest) (*PurchaseOrderResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	item, err := trade.NewPurchaseOrderItem(orderID, req.ProductID, req.UnitPrice, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	if err := s.recalc.RecalculatePurchaseOrder(ctx, orderID); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, orderID)
}

// UpdateItem changes a line item's price or quantity and recalculates
// the totals
func (s *PurchaseOrderService) UpdateItem(ctx context.Context, orderID, itemID uuid.UUID, req UpdateOrderItemRequest) (*PurchaseOrderResponse, error) {
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

	if err := s.recalc.RecalculatePurchaseOrder(ctx, orderID); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, orderID)
}

// DeleteItem removes a line item and recalculates the totals
func (s *PurchaseOrderService) DeleteItem(ctx context.Context, orderID, itemID uuid.UUID) error {
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

	return s.recalc.RecalculatePurchaseOrder(ctx, orderID)
}

// publishEvents publishes the aggregate's pending events. Delivery is
// best effort; the state change is already durable.
func (s *PurchaseOrderService) publishEvents(ctx context.Context, order *trade.PurchaseOrder) {
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
