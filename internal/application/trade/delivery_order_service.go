package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/shared/integrity"
	"github.com/ims/backend/internal/domain/shared/sequence"
	"github.com/ims/backend/internal/domain/trade"
)

// DeliveryOrderService handles delivery order business operations
type DeliveryOrderService struct {
	deliveries  trade.DeliveryOrderRepository
	salesOrders trade.SalesOrderRepository
	numbers     sequence.Generator
	guard       *integrity.Guard
	locks       orderLocks
}

// NewDeliveryOrderService creates a new DeliveryOrderService
func NewDeliveryOrderService(
	deliveries trade.DeliveryOrderRepository,
	salesOrders trade.SalesOrderRepository,
	returns trade.SalesReturnRepository,
	numbers sequence.Generator,
) *DeliveryOrderService {
	return &DeliveryOrderService{
		deliveries:  deliveries,
		salesOrders: salesOrders,
		numbers:     numbers,
		guard: integrity.NewGuard(integrity.KindDeliveryOrder, integrity.Rule{
			DependentKind: integrity.KindSalesReturn,
			Count:         returns.CountByDeliveryOrder,
		}),
	}
}

// Create creates a new delivery order against an existing sales order
func (s *DeliveryOrderService) Create(ctx context.Context, req CreateDeliveryOrderRequest) (*DeliveryOrderResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// the referenced sales order must exist at creation time
	if _, err := s.salesOrders.FindByID(ctx, req.SalesOrderID); err != nil {
		return nil, err
	}

	number, err := s.numbers.Next(ctx, sequence.DeliveryOrders)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewDeliveryOrder(number, req.DeliveryDate, req.SalesOrderID)
	if err != nil {
		return nil, err
	}
	if req.WarehouseID != nil {
		if err := order.SetWarehouse(*req.WarehouseID); err != nil {
			return nil, err
		}
	}
	if req.Description != "" {
		order.Description = req.Description
	}

	if err := s.deliveries.Save(ctx, order); err != nil {
		return nil, err
	}

	resp := ToDeliveryOrderResponse(order)
	return &resp, nil
}

// GetByID retrieves a delivery order
func (s *DeliveryOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*DeliveryOrderResponse, error) {
	order, err := s.deliveries.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToDeliveryOrderResponse(order)
	return &resp, nil
}

// List retrieves delivery orders with filtering and pagination
func (s *DeliveryOrderService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[DeliveryOrderResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	orders, err := s.deliveries.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[DeliveryOrderResponse]{}, err
	}
	total, err := s.deliveries.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[DeliveryOrderResponse]{}, err
	}

	responses := make([]DeliveryOrderResponse, 0, len(orders))
	for idx := range orders {
		responses = append(responses, ToDeliveryOrderResponse(&orders[idx]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// ListBySalesOrder retrieves every delivery order raised against one
// sales order, without pagination
func (s *DeliveryOrderService) ListBySalesOrder(ctx context.Context, salesOrderID uuid.UUID) ([]DeliveryOrderResponse, error) {
	orders, err := s.deliveries.FindAll(ctx, shared.FilterBy(map[string]interface{}{
		"sales_order_id": salesOrderID,
	}))
	if err != nil {
		return nil, err
	}

	responses := make([]DeliveryOrderResponse, 0, len(orders))
	for idx := range orders {
		responses = append(responses, ToDeliveryOrderResponse(&orders[idx]))
	}
	return responses, nil
}

// Ship marks the delivery as shipped
func (s *DeliveryOrderService) Ship(ctx context.Context, orderID uuid.UUID) (*DeliveryOrderResponse, error) {
	return s.transition(ctx, orderID, (*trade.DeliveryOrder).Ship)
}

// Deliver marks the delivery as completed
func (s *DeliveryOrderService) Deliver(ctx context.Context, orderID uuid.UUID) (*DeliveryOrderResponse, error) {
	return s.transition(ctx, orderID, (*trade.DeliveryOrder).Deliver)
}

// Cancel cancels the delivery
func (s *DeliveryOrderService) Cancel(ctx context.Context, orderID uuid.UUID) (*DeliveryOrderResponse, error) {
	return s.transition(ctx, orderID, (*trade.DeliveryOrder).Cancel)
}

func (s *DeliveryOrderService) transition(ctx context.Context, orderID uuid.UUID, op func(*trade.DeliveryOrder) error) (*DeliveryOrderResponse, error) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.deliveries.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := op(order); err != nil {
		return nil, err
	}
	if err := s.deliveries.Save(ctx, order); err != nil {
		return nil, err
	}

	resp := ToDeliveryOrderResponse(order)
	return &resp, nil
}

// Delete removes a delivery order. Deletion is refused while sales
// returns still reference it.
func (s *DeliveryOrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	if _, err := s.deliveries.FindByID(ctx, orderID); err != nil {
		return err
	}

	result, err := s.guard.CanDelete(ctx, orderID)
	if err != nil {
		return err
	}
	if !result.Allowed {
		return result.DomainError(integrity.KindDeliveryOrder)
	}

	return s.deliveries.Delete(ctx, orderID)
}
