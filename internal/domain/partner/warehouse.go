package partner

import (
	"github.com/ims/backend/internal/domain/shared"
)

// Warehouse is a storage location goods ship from and return to
type Warehouse struct {
	shared.BaseEntity
	Code    string `gorm:"size:50;uniqueIndex"`
	Name    string `gorm:"size:200;not null"`
	Address string `gorm:"size:500"`
}

// NewWarehouse creates a new warehouse
func NewWarehouse(code, name, address string) (*Warehouse, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Warehouse code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	return &Warehouse{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		Address:    address,
	}, nil
}

// Update replaces the warehouse's descriptive attributes
func (w *Warehouse) Update(name, address string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	w.Name = name
	w.Address = address
	w.Touch()
	return nil
}
