package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TaxRepository persists taxes
type TaxRepository interface {
	shared.Repository[Tax]
}

// RateResolver resolves a tax id to its percentage rate.
// Implementations return a zero rate for a missing tax record; callers
// must not invoke the resolver at all when the order carries no tax
// reference.
type RateResolver interface {
	RateFor(ctx context.Context, taxID uuid.UUID) (decimal.Decimal, error)
}
