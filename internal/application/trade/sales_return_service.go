package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/shared/sequence"
	"github.com/ims/backend/internal/domain/trade"
)

// SalesReturnService handles sales return business operations
type SalesReturnService struct {
	returns    trade.SalesReturnRepository
	deliveries trade.DeliveryOrderRepository
	numbers    sequence.Generator
	locks      orderLocks
}

// NewSalesReturnService creates a new SalesReturnService
func NewSalesReturnService(
	returns trade.SalesReturnRepository,
	deliveries trade.DeliveryOrderRepository,
	numbers sequence.Generator,
) *SalesReturnService {
	return &SalesReturnService{
		returns:    returns,
		deliveries: deliveries,
		numbers:    numbers,
	}
}

// Create creates a new sales return against an existing delivery order
func (s *SalesReturnService) Create(ctx context.Context, req CreateSalesReturnRequest) (*SalesReturnResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.deliveries.FindByID(ctx, req.DeliveryOrderID); err != nil {
		return nil, err
	}

	number, err := s.numbers.Next(ctx, sequence.SalesReturns)
	if err != nil {
		return nil, err
	}

	ret, err := trade.NewSalesReturn(number, req.ReturnDate, req.DeliveryOrderID)
	if err != nil {
		return nil, err
	}
	if req.Reason != "" {
		ret.SetReason(req.Reason)
	}

	if err := s.returns.Save(ctx, ret); err != nil {
		return nil, err
	}

	resp := ToSalesReturnResponse(ret)
	return &resp, nil
}

// GetByID retrieves a sales return
func (s *SalesReturnService) GetByID(ctx context.Context, returnID uuid.UUID) (*SalesReturnResponse, error) {
	ret, err := s.returns.FindByID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	resp := ToSalesReturnResponse(ret)
	return &resp, nil
}

// List retrieves sales returns with filtering and pagination
func (s *SalesReturnService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[SalesReturnResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	returns, err := s.returns.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[SalesReturnResponse]{}, err
	}
	total, err := s.returns.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[SalesReturnResponse]{}, err
	}

	responses := make([]SalesReturnResponse, 0, len(returns))
	for idx := range returns {
		responses = append(responses, ToSalesReturnResponse(&returns[idx]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Complete marks the return as completed
func (s *SalesReturnService) Complete(ctx context.Context, returnID uuid.UUID) (*SalesReturnResponse, error) {
	return s.transition(ctx, returnID, (*trade.SalesReturn).Complete)
}

// Cancel cancels the return
func (s *SalesReturnService) Cancel(ctx context.Context, returnID uuid.UUID) (*SalesReturnResponse, error) {
	return s.transition(ctx, returnID, (*trade.SalesReturn).Cancel)
}

func (s *SalesReturnService) transition(ctx context.Context, returnID uuid.UUID, op func(*trade.SalesReturn) error) (*SalesReturnResponse, error) {
	unlock := s.locks.Lock(returnID)
	defer unlock()

	ret, err := s.returns.FindByID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	if err := op(ret); err != nil {
		return nil, err
	}
	if err := s.returns.Save(ctx, ret); err != nil {
		return nil, err
	}

	resp := ToSalesReturnResponse(ret)
	return &resp, nil
}

// Delete removes a sales return. Nothing references returns, so the
// delete is unconditional.
func (s *SalesReturnService) Delete(ctx context.Context, returnID uuid.UUID) error {
	unlock := s.locks.Lock(returnID)
	defer unlock()

	if _, err := s.returns.FindByID(ctx, returnID); err != nil {
		return err
	}
	return s.returns.Delete(ctx, returnID)
}
