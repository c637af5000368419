package catalog

import (
	"github.com/ims/backend/internal/domain/shared"
)

// UnitOfMeasure is the unit products are counted in (pcs, box, kg)
type UnitOfMeasure struct {
	shared.BaseEntity
	Code string `gorm:"size:20;not null;uniqueIndex"`
	Name string `gorm:"size:100;not null"`
}

// NewUnitOfMeasure creates a new unit of measure
func NewUnitOfMeasure(code, name string) (*UnitOfMeasure, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Unit code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Unit name cannot be empty")
	}
	return &UnitOfMeasure{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
	}, nil
}

// Update replaces the unit's descriptive attributes
func (u *UnitOfMeasure) Update(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Unit name cannot be empty")
	}
	u.Name = name
	u.Touch()
	return nil
}
