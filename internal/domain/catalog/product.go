package catalog

import (
	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable/purchasable product
type Product struct {
	shared.BaseAggregateRoot
	Code          string `gorm:"size:50;uniqueIndex"`
	Name          string `gorm:"size:200;not null"`
	GroupID       *uuid.UUID
	UnitID        *uuid.UUID
	SalePrice     decimal.Decimal `gorm:"type:decimal(20,2)"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(20,2)"`
	Description   string          `gorm:"size:500"`
}

// NewProduct creates a new product
func NewProduct(code, name string, salePrice, purchasePrice decimal.Decimal) (*Product, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if salePrice.IsNegative() || purchasePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		SalePrice:         salePrice,
		PurchasePrice:     purchasePrice,
	}, nil
}

// Rename changes the product name
func (p *Product) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	p.Name = name
	p.Touch()
	return nil
}

// UpdatePrices replaces the sale and purchase prices
func (p *Product) UpdatePrices(salePrice, purchasePrice decimal.Decimal) error {
	if salePrice.IsNegative() || purchasePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	p.SalePrice = salePrice
	p.PurchasePrice = purchasePrice
	p.Touch()
	return nil
}

// AssignGroup assigns the product to a product group
func (p *Product) AssignGroup(groupID uuid.UUID) {
	p.GroupID = &groupID
	p.Touch()
}

// AssignUnit assigns the product's unit of measure
func (p *Product) AssignUnit(unitID uuid.UUID) {
	p.UnitID = &unitID
	p.Touch()
}
