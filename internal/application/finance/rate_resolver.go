package finance

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/finance"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TaxRateResolver resolves tax rates from the tax repository.
// A tax record that no longer exists resolves to a zero rate, so a
// dangling tax reference degrades an order to untaxed instead of
// failing its recalculation.
type TaxRateResolver struct {
	taxes finance.TaxRepository
}

// NewTaxRateResolver creates a new TaxRateResolver
func NewTaxRateResolver(taxes finance.TaxRepository) *TaxRateResolver {
	return &TaxRateResolver{taxes: taxes}
}

// RateFor implements finance.RateResolver
func (r *TaxRateResolver) RateFor(ctx context.Context, taxID uuid.UUID) (decimal.Decimal, error) {
	tax, err := r.taxes.FindByID(ctx, taxID)
	if errors.Is(err, shared.ErrNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return tax.Rate, nil
}
