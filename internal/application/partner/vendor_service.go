package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
)

// VendorService handles vendor business operations
type VendorService struct {
	vendors partner.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendors partner.VendorRepository) *VendorService {
	return &VendorService{vendors: vendors}
}

// Create creates a new vendor
func (s *VendorService) Create(ctx context.Context, req CreateVendorRequest) (*VendorResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.vendors.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Vendor code %s is already in use", req.Code)
	}

	vendor, err := partner.NewVendor(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if err := vendor.Update(req.Name, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}

	if err := s.vendors.Save(ctx, vendor); err != nil {
		return nil, err
	}

	resp := ToVendorResponse(vendor)
	return &resp, nil
}

// GetByID retrieves a vendor
func (s *VendorService) GetByID(ctx context.Context, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	resp := ToVendorResponse(vendor)
	return &resp, nil
}

// List retrieves vendors with filtering and pagination
func (s *VendorService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[VendorResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	vendors, err := s.vendors.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[VendorResponse]{}, err
	}
	total, err := s.vendors.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[VendorResponse]{}, err
	}

	responses := make([]VendorResponse, 0, len(vendors))
	for idx := range vendors {
		responses = append(responses, ToVendorResponse(&vendors[idx]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update changes a vendor's attributes
func (s *VendorService) Update(ctx context.Context, vendorID uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if err := vendor.Update(req.Name, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}
	if err := s.vendors.Save(ctx, vendor); err != nil {
		return nil, err
	}

	resp := ToVendorResponse(vendor)
	return &resp, nil
}

// Delete removes a vendor. Purchase orders keep their vendor
// reference; the delete itself is unconditional.
func (s *VendorService) Delete(ctx context.Context, vendorID uuid.UUID) error {
	if _, err := s.vendors.FindByID(ctx, vendorID); err != nil {
		return err
	}
	return s.vendors.Delete(ctx, vendorID)
}
