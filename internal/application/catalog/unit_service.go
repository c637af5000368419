package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/catalog"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/shared/integrity"
)

// UnitOfMeasureService handles unit of measure operations.
// A unit cannot be deleted while products reference it.
type UnitOfMeasureService struct {
	units catalog.UnitOfMeasureRepository
	guard *integrity.Guard
}

// NewUnitOfMeasureService creates a new UnitOfMeasureService
func NewUnitOfMeasureService(
	units catalog.UnitOfMeasureRepository,
	products catalog.ProductRepository,
) *UnitOfMeasureService {
	return &UnitOfMeasureService{
		units: units,
		guard: integrity.NewGuard(integrity.KindUnitOfMeasure, integrity.Rule{
			DependentKind: integrity.KindProduct,
			Count:         products.CountByUnit,
		}),
	}
}

// Create creates a new unit of measure
func (s *UnitOfMeasureService) Create(ctx context.Context, req CreateUnitRequest) (*UnitResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.units.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Unit code %s is already in use", req.Code)
	}

	unit, err := catalog.NewUnitOfMeasure(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.units.Save(ctx, unit); err != nil {
		return nil, err
	}
	resp := ToUnitResponse(unit)
	return &resp, nil
}

// GetByID retrieves a unit of measure
func (s *UnitOfMeasureService) GetByID(ctx context.Context, unitID uuid.UUID) (*UnitResponse, error) {
	unit, err := s.units.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	resp := ToUnitResponse(unit)
	return &resp, nil
}

// List retrieves units of measure with filtering and pagination
func (s *UnitOfMeasureService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[UnitResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	units, err := s.units.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[UnitResponse]{}, err
	}
	total, err := s.units.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[UnitResponse]{}, err
	}

	responses := make([]UnitResponse, 0, len(units))
	for idx := range units {
		responses = append(responses, ToUnitResponse(&units[idx]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update renames a unit of measure
func (s *UnitOfMeasureService) Update(ctx context.Context, unitID uuid.UUID, req UpdateUnitRequest) (*UnitResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	unit, err := s.units.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if err := unit.Update(req.Name); err != nil {
		return nil, err
	}
	if err := s.units.Save(ctx, unit); err != nil {
		return nil, err
	}
	resp := ToUnitResponse(unit)
	return &resp, nil
}

// Delete removes a unit of measure unless products still reference it
func (s *UnitOfMeasureService) Delete(ctx context.Context, unitID uuid.UUID) error {
	if _, err := s.units.FindByID(ctx, unitID); err != nil {
		return err
	}

	result, err := s.guard.CanDelete(ctx, unitID)
	if err != nil {
		return err
	}
	if !result.Allowed {
		return result.DomainError(integrity.KindUnitOfMeasure)
	}

	return s.units.Delete(ctx, unitID)
}
