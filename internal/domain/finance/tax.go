package finance

import (
	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Tax is a named percentage rate applied to order subtotals
type Tax struct {
	shared.BaseEntity
	Name string          `gorm:"size:100;not null;uniqueIndex"`
	Rate decimal.Decimal `gorm:"type:decimal(10,4);not null"` // percentage, e.g. 10 for 10%
}

// NewTax creates a new tax
func NewTax(name string, rate decimal.Decimal) (*Tax, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tax name cannot be empty")
	}
	if rate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Tax rate cannot be negative")
	}
	return &Tax{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Rate:       rate,
	}, nil
}

// Update replaces the tax name and rate
func (t *Tax) Update(name string, rate decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Tax name cannot be empty")
	}
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Tax rate cannot be negative")
	}
	t.Name = name
	t.Rate = rate
	t.Touch()
	return nil
}
