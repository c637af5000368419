package finance

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/finance"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/shared/integrity"
	"github.com/ims/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// TaxRequest is the request to create or update a tax
type TaxRequest struct {
	Name string          `json:"name" validate:"required,max=100"`
	Rate decimal.Decimal `json:"rate"`
}

// TaxResponse is the outward representation of a tax
type TaxResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToTaxResponse maps a tax to a response
func ToTaxResponse(t *finance.Tax) TaxResponse {
	return TaxResponse{
		ID:        t.ID,
		Name:      t.Name,
		Rate:      t.Rate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// TaxService handles tax business operations.
// A tax cannot be deleted while sales orders reference it.
type TaxService struct {
	taxes finance.TaxRepository
	guard *integrity.Guard
}

// NewTaxService creates a new TaxService
func NewTaxService(
	taxes finance.TaxRepository,
	salesOrders trade.SalesOrderRepository,
) *TaxService {
	return &TaxService{
		taxes: taxes,
		guard: integrity.NewGuard(integrity.KindTax, integrity.Rule{
			DependentKind: integrity.KindSalesOrder,
			Count:         salesOrders.CountByTax,
		}),
	}
}

// Create creates a new tax
func (s *TaxService) Create(ctx context.Context, req TaxRequest) (*TaxResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainErrorf("VALIDATION_ERROR", "Invalid request: %v", err)
	}

	tax, err := finance.NewTax(req.Name, req.Rate)
	if err != nil {
		return nil, err
	}
	if err := s.taxes.Save(ctx, tax); err != nil {
		return nil, err
	}
	resp := ToTaxResponse(tax)
	return &resp, nil
}

// GetByID retrieves a tax
func (s *TaxService) GetByID(ctx context.Context, taxID uuid.UUID) (*TaxResponse, error) {
	tax, err := s.taxes.FindByID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	resp := ToTaxResponse(tax)
	return &resp, nil
}

// List retrieves taxes with filtering and pagination
func (s *TaxService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[TaxResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	taxes, err := s.taxes.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[TaxResponse]{}, err
	}
	total, err := s.taxes.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[TaxResponse]{}, err
	}

	responses := make([]TaxResponse, 0, len(taxes))
	for idx := range taxes {
		responses = append(responses, ToTaxResponse(&taxes[idx]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Update changes a tax's name and rate.
// Orders referencing the tax pick the new rate up on their next
// recalculation; stored totals are not rewritten here.
func (s *TaxService) Update(ctx context.Context, taxID uuid.UUID, req TaxRequest) (*TaxResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainErrorf("VALIDATION_ERROR", "Invalid request: %v", err)
	}

	tax, err := s.taxes.FindByID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if err := tax.Update(req.Name, req.Rate); err != nil {
		return nil, err
	}
	if err := s.taxes.Save(ctx, tax); err != nil {
		return nil, err
	}
	resp := ToTaxResponse(tax)
	return &resp, nil
}

// Delete removes a tax unless sales orders still reference it
func (s *TaxService) Delete(ctx context.Context, taxID uuid.UUID) error {
	if _, err := s.taxes.FindByID(ctx, taxID); err != nil {
		return err
	}

	result, err := s.guard.CanDelete(ctx, taxID)
	if err != nil {
		return err
	}
	if !result.Allowed {
		return result.DomainError(integrity.KindTax)
	}

	return s.taxes.Delete(ctx, taxID)
}
