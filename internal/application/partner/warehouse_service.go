package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
)

// WarehouseService handles warehouse business operations
type WarehouseService struct {
	warehouses partner.WarehouseRepository
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouses partner.WarehouseRepository) *WarehouseService {
	return &WarehouseService{warehouses: warehouses}
}

// Create creates a new warehouse
func (s *WarehouseService) Create(ctx context.Context, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.warehouses.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Warehouse code %s is already in use", req.Code)
	}

	warehouse, err := partner.NewWarehouse(req.Code, req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.warehouses.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	resp := ToWarehouseResponse(warehouse)
	return &resp, nil
}

// GetByID retrieves a warehouse
func (s *WarehouseService) GetByID(ctx context.Context, warehouseID uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouses.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	resp := ToWarehouseResponse(warehouse)
	return &resp, nil
}

// List retrieves warehouses with filtering and pagination
func (s *WarehouseService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[WarehouseResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	warehouses, err := s.warehouses.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[WarehouseResponse]{}, err
	}
	total, err := s.warehouses.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[WarehouseResponse]{}, err
	}

	responses := make([]WarehouseResponse, 0, len(warehouses))
	for idx := range warehouses {
		responses = append(responses, ToWarehouseResponse(&warehouses[idx]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update changes a warehouse's attributes
func (s *WarehouseService) Update(ctx context.Context, warehouseID uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	warehouse, err := s.warehouses.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if err := warehouse.Update(req.Name, req.Address); err != nil {
		return nil, err
	}
	if err := s.warehouses.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	resp := ToWarehouseResponse(warehouse)
	return &resp, nil
}

// Delete removes a warehouse
func (s *WarehouseService) Delete(ctx context.Context, warehouseID uuid.UUID) error {
	if _, err := s.warehouses.FindByID(ctx, warehouseID); err != nil {
		return err
	}
	return s.warehouses.Delete(ctx, warehouseID)
}
