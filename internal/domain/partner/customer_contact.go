package partner

import (
	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
)

// CustomerContact is a contact person attached to a customer.
// It lives and dies with its customer.
type CustomerContact struct {
	shared.BaseEntity
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"size:200;not null"`
	Email      string    `gorm:"size:200"`
	Phone      string    `gorm:"size:50"`
	Position   string    `gorm:"size:100"`
}

// NewCustomerContact creates a new contact for a customer
func NewCustomerContact(customerID uuid.UUID, name string) (*CustomerContact, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Contact name cannot be empty")
	}

	return &CustomerContact{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Name:       name,
	}, nil
}

// Update replaces the contact's descriptive attributes
func (c *CustomerContact) Update(name, email, phone, position string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Contact name cannot be empty")
	}
	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Position = position
	c.Touch()
	return nil
}
