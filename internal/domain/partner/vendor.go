package partner

import (
	"github.com/ims/backend/internal/domain/shared"
)

// Vendor represents a supplier purchase orders are placed with
type Vendor struct {
	shared.BaseAggregateRoot
	Code    string `gorm:"size:50;uniqueIndex"`
	Name    string `gorm:"size:200;not null"`
	Email   string `gorm:"size:200"`
	Phone   string `gorm:"size:50"`
	Address string `gorm:"size:500"`
}

// NewVendor creates a new vendor
func NewVendor(code, name string) (*Vendor, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Vendor code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}
	return &Vendor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
	}, nil
}

// Update replaces the vendor's descriptive attributes
func (v *Vendor) Update(name, email, phone, address string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}
	v.Name = name
	v.Email = email
	v.Phone = phone
	v.Address = address
	v.Touch()
	return nil
}
