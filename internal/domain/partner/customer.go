package partner

import (
	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
)

// CustomerStatus represents the lifecycle status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
)

// IsValid checks if the status is a valid CustomerStatus
func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

// Customer represents a customer aggregate root.
// Contacts are owned by the customer and are cascade-deleted with it.
type Customer struct {
	shared.BaseAggregateRoot
	Code       string `gorm:"size:50;uniqueIndex"`
	Name       string `gorm:"size:200;not null"`
	GroupID    *uuid.UUID
	CategoryID *uuid.UUID
	Email      string `gorm:"size:200"`
	Phone      string `gorm:"size:50"`
	Address    string `gorm:"size:500"`
	Status     CustomerStatus `gorm:"size:20;not null;default:'ACTIVE'"`
}

// NewCustomer creates a new customer
func NewCustomer(code, name string) (*Customer, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Customer code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Status:            CustomerStatusActive,
	}, nil
}

// Rename changes the customer name
func (c *Customer) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	c.Name = name
	c.Touch()
	return nil
}

// AssignGroup assigns the customer to a customer group
func (c *Customer) AssignGroup(groupID uuid.UUID) {
	c.GroupID = &groupID
	c.Touch()
}

// AssignCategory assigns the customer to a customer category
func (c *Customer) AssignCategory(categoryID uuid.UUID) {
	c.CategoryID = &categoryID
	c.Touch()
}

// UpdateContactInfo updates email, phone and address
func (c *Customer) UpdateContactInfo(email, phone, address string) {
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.Touch()
}

// Deactivate marks the customer as inactive
func (c *Customer) Deactivate() {
	c.Status = CustomerStatusInactive
	c.Touch()
}

// Activate marks the customer as active
func (c *Customer) Activate() {
	c.Status = CustomerStatusActive
	c.Touch()
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}
