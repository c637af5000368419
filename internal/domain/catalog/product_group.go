package catalog

import (
	"github.com/ims/backend/internal/domain/shared"
)

// ProductGroup groups related products
type ProductGroup struct {
	shared.BaseEntity
	Name        string `gorm:"size:200;not null;uniqueIndex"`
	Description string `gorm:"size:500"`
}

// NewProductGroup creates a new product group
func NewProductGroup(name, description string) (*ProductGroup, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Group name cannot be empty")
	}
	return &ProductGroup{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}

// Update replaces the group's descriptive attributes
func (g *ProductGroup) Update(name, description string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Group name cannot be empty")
	}
	g.Name = name
	g.Description = description
	g.Touch()
	return nil
}
