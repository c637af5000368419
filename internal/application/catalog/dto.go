package catalog

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/catalog"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return shared.NewDomainErrorf("VALIDATION_ERROR", "Invalid request: %v", err)
	}
	return nil
}

// CreateProductRequest is the request to create a product
type CreateProductRequest struct {
	Code          string          `json:"code" validate:"required,max=50"`
	Name          string          `json:"name" validate:"required,max=200"`
	GroupID       *uuid.UUID      `json:"group_id,omitempty"`
	UnitID        *uuid.UUID      `json:"unit_id,omitempty"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Description   string          `json:"description,omitempty" validate:"max=500"`
}

// UpdateProductRequest is the request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	GroupID       *uuid.UUID       `json:"group_id,omitempty"`
	UnitID        *uuid.UUID       `json:"unit_id,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=500"`
}

// GroupRequest is the request to create or update a product group
type GroupRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// CreateUnitRequest is the request to create a unit of measure
type CreateUnitRequest struct {
	Code string `json:"code" validate:"required,max=20"`
	Name string `json:"name" validate:"required,max=100"`
}

// UpdateUnitRequest is the request to rename a unit of measure
type UpdateUnitRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ProductResponse is the outward representation of a product
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	GroupID       *uuid.UUID      `json:"group_id,omitempty"`
	UnitID        *uuid.UUID      `json:"unit_id,omitempty"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GroupResponse is the outward representation of a product group
type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UnitResponse is the outward representation of a unit of measure
type UnitResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProductResponse maps a product to a response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		GroupID:       p.GroupID,
		UnitID:        p.UnitID,
		SalePrice:     p.SalePrice,
		PurchasePrice: p.PurchasePrice,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToGroupResponse maps a product group to a response
func ToGroupResponse(g *catalog.ProductGroup) GroupResponse {
	return GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// ToUnitResponse maps a unit of measure to a response
func ToUnitResponse(u *catalog.UnitOfMeasure) UnitResponse {
	return UnitResponse{
		ID:        u.ID,
		Code:      u.Code,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
