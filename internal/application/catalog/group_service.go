package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/catalog"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/shared/integrity"
)

// ProductGroupService handles product group operations.
// A group cannot be deleted while products reference it.
type ProductGroupService struct {
	groups catalog.ProductGroupRepository
	guard  *integrity.Guard
}

// NewProductGroupService creates a new ProductGroupService
func NewProductGroupService(
	groups catalog.ProductGroupRepository,
	products catalog.ProductRepository,
) *ProductGroupService {
	return &ProductGroupService{
		groups: groups,
		guard: integrity.NewGuard(integrity.KindProductGroup, integrity.Rule{
			DependentKind: integrity.KindProduct,
			Count:         products.CountByGroup,
		}),
	}
}

// Create creates a new product group
func (s *ProductGroupService) Create(ctx context.Context, req GroupRequest) (*GroupResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	group, err := catalog.NewProductGroup(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.groups.Save(ctx, group); err != nil {
		return nil, err
	}
	resp := ToGroupResponse(group)
	return &resp, nil
}

// GetByID retrieves a product group
func (s *ProductGroupService) GetByID(ctx context.Context, groupID uuid.UUID) (*GroupResponse, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	resp := ToGroupResponse(group)
	return &resp, nil
}

// List retrieves product groups with filtering and pagination
func (s *ProductGroupService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[GroupResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	groups, err := s.groups.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[GroupResponse]{}, err
	}
	total, err := s.groups.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[GroupResponse]{}, err
	}

	responses := make([]GroupResponse, 0, len(groups))
	for idx := range groups {
		responses = append(responses, ToGroupResponse(&groups[idx]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update changes a product group's attributes
func (s *ProductGroupService) Update(ctx context.Context, groupID uuid.UUID, req GroupRequest) (*GroupResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := group.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if err := s.groups.Save(ctx, group); err != nil {
		return nil, err
	}
	resp := ToGroupResponse(group)
	return &resp, nil
}

// Delete removes a product group unless products still reference it
func (s *ProductGroupService) Delete(ctx context.Context, groupID uuid.UUID) error {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		return err
	}

	result, err := s.guard.CanDelete(ctx, groupID)
	if err != nil {
		return err
	}
	if !result.Allowed {
		return result.DomainError(integrity.KindProductGroup)
	}

	return s.groups.Delete(ctx, groupID)
}
