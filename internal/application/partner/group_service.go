package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/shared/integrity"
)

// CustomerGroupService handles customer group operations.
// A group cannot be deleted while customers reference it.
type CustomerGroupService struct {
	groups partner.CustomerGroupRepository
	guard  *integrity.Guard
}

// NewCustomerGroupService creates a new CustomerGroupService
func NewCustomerGroupService(
	groups partner.CustomerGroupRepository,
	customers partner.CustomerRepository,
) *CustomerGroupService {
	return &CustomerGroupService{
		groups: groups,
		guard: integrity.NewGuard(integrity.KindCustomerGroup, integrity.Rule{
			DependentKind: integrity.KindCustomer,
			Count:         customers.CountByGroup,
		}),
	}
}

// Create creates a new customer group
func (s *CustomerGroupService) Create(ctx context.Context, req GroupRequest) (*GroupResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	group, err := partner.NewCustomerGroup(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.groups.Save(ctx, group); err != nil {
		return nil, err
	}
	return toGroupResponse(group.BaseEntity, group.Name, group.Description), nil
}

// GetByID retrieves a customer group
func (s *CustomerGroupService) GetByID(ctx context.Context, groupID uuid.UUID) (*GroupResponse, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return toGroupResponse(group.BaseEntity, group.Name, group.Description), nil
}

// List retrieves customer groups with filtering and pagination
func (s *CustomerGroupService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[GroupResponse], error) {
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
		g := &groups[idx]
		responses = append(responses, *toGroupResponse(g.BaseEntity, g.Name, g.Description))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update changes a customer group's attributes
func (s *CustomerGroupService) Update(ctx context.Context, groupID uuid.UUID, req GroupRequest) (*GroupResponse, error) {
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
	return toGroupResponse(group.BaseEntity, group.Name, group.Description), nil
}

// Delete removes a customer group unless customers still reference it
func (s *CustomerGroupService) Delete(ctx context.Context, groupID uuid.UUID) error {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		return err
	}

	result, err := s.guard.CanDelete(ctx, groupID)
	if err != nil {
		return err
	}
	if !result.Allowed {
		return result.DomainError(integrity.KindCustomerGroup)
	}

	return s.groups.Delete(ctx, groupID)
}

// CustomerCategoryService handles customer category operations.
// A category cannot be deleted while customers reference it.
type CustomerCategoryService struct {
	categories partner.CustomerCategoryRepository
	guard      *integrity.Guard
}

// NewCustomerCategoryService creates a new CustomerCategoryService
func NewCustomerCategoryService(
	categories partner.CustomerCategoryRepository,
	customers partner.CustomerRepository,
) *CustomerCategoryService {
	return &CustomerCategoryService{
		categories: categories,
		guard: integrity.NewGuard(integrity.KindCustomerCategory, integrity.Rule{
			DependentKind: integrity.KindCustomer,
			Count:         customers.CountByCategory,
		}),
	}
}

// Create creates a new customer category
func (s *CustomerCategoryService) Create(ctx context.Context, req GroupRequest) (*GroupResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	category, err := partner.NewCustomerCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return toGroupResponse(category.BaseEntity, category.Name, category.Description), nil
}

// GetByID retrieves a customer category
func (s *CustomerCategoryService) GetByID(ctx context.Context, categoryID uuid.UUID) (*GroupResponse, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toGroupResponse(category.BaseEntity, category.Name, category.Description), nil
}

// List retrieves customer categories with filtering and pagination
func (s *CustomerCategoryService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[GroupResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	categories, err := s.categories.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[GroupResponse]{}, err
	}
	total, err := s.categories.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[GroupResponse]{}, err
	}

	responses := make([]GroupResponse, 0, len(categories))
	for idx := range categories {
		c := &categories[idx]
		responses = append(responses, *toGroupResponse(c.BaseEntity, c.Name, c.Description))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update changes a customer category's attributes
func (s *CustomerCategoryService) Update(ctx context.Context, categoryID uuid.UUID, req GroupRequest) (*GroupResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := category.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return toGroupResponse(category.BaseEntity, category.Name, category.Description), nil
}

// Delete removes a customer category unless customers still reference it
func (s *CustomerCategoryService) Delete(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return err
	}

	result, err := s.guard.CanDelete(ctx, categoryID)
	if err != nil {
		return err
	}
	if !result.Allowed {
		return result.DomainError(integrity.KindCustomerCategory)
	}

	return s.categories.Delete(ctx, categoryID)
}

func toGroupResponse(e shared.BaseEntity, name, description string) *GroupResponse {
	return &GroupResponse{
		ID:          e.ID,
		Name:        name,
		Description: description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
