package partner

import (
	"github.com/ims/backend/internal/domain/shared"
)

// CustomerGroup groups customers for pricing and reporting
type CustomerGroup struct {
	shared.BaseEntity
	Name        string `gorm:"size:200;not null;uniqueIndex"`
	Description string `gorm:"size:500"`
}

// NewCustomerGroup creates a new customer group
func NewCustomerGroup(name, description string) (*CustomerGroup, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Group name cannot be empty")
	}
	return &CustomerGroup{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}

// Update replaces the group's descriptive attributes
func (g *CustomerGroup) Update(name, description string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Group name cannot be empty")
	}
	g.Name = name
	g.Description = description
	g.Touch()
	return nil
}

// CustomerCategory classifies customers (e.g. retail, wholesale)
type CustomerCategory struct {
	shared.BaseEntity
	Name        string `gorm:"size:200;not null;uniqueIndex"`
	Description string `gorm:"size:500"`
}

// NewCustomerCategory creates a new customer category
func NewCustomerCategory(name, description string) (*CustomerCategory, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	return &CustomerCategory{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}

// Update replaces the category's descriptive attributes
func (c *CustomerCategory) Update(name, description string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	c.Name = name
	c.Description = description
	c.Touch()
	return nil
}
