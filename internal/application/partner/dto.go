package partner

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
)

var validate = validator.New()

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return shared.NewDomainErrorf("VALIDATION_ERROR", "Invalid request: %v", err)
	}
	return nil
}

// CreateCustomerRequest is the request to create a customer
type CreateCustomerRequest struct {
	Code       string     `json:"code" validate:"required,max=50"`
	Name       string     `json:"name" validate:"required,max=200"`
	GroupID    *uuid.UUID `json:"group_id,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Email      string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string     `json:"phone,omitempty" validate:"max=50"`
	Address    string     `json:"address,omitempty" validate:"max=500"`
}

// UpdateCustomerRequest is the request to update a customer
type UpdateCustomerRequest struct {
	Name       *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	GroupID    *uuid.UUID `json:"group_id,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Email      *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string    `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address    *string    `json:"address,omitempty" validate:"omitempty,max=500"`
}

// CreateContactRequest is the request to add a contact to a customer
type CreateContactRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" validate:"max=50"`
	Position string `json:"position,omitempty" validate:"max=100"`
}

// GroupRequest is the request to create or update a customer group or category
type GroupRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// CreateVendorRequest is the request to create a vendor
type CreateVendorRequest struct {
	Code    string `json:"code" validate:"required,max=50"`
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"max=50"`
	Address string `json:"address,omitempty" validate:"max=500"`
}

// UpdateVendorRequest is the request to update a vendor
type UpdateVendorRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"max=50"`
	Address string `json:"address,omitempty" validate:"max=500"`
}

// CreateWarehouseRequest is the request to create a warehouse
type CreateWarehouseRequest struct {
	Code    string `json:"code" validate:"required,max=50"`
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address,omitempty" validate:"max=500"`
}

// UpdateWarehouseRequest is the request to update a warehouse
type UpdateWarehouseRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address,omitempty" validate:"max=500"`
}

// CustomerResponse is the outward representation of a customer
type CustomerResponse struct {
	ID         uuid.UUID              `json:"id"`
	Code       string                 `json:"code"`
	Name       string                 `json:"name"`
	GroupID    *uuid.UUID             `json:"group_id,omitempty"`
	CategoryID *uuid.UUID             `json:"category_id,omitempty"`
	Email      string                 `json:"email,omitempty"`
	Phone      string                 `json:"phone,omitempty"`
	Address    string                 `json:"address,omitempty"`
	Status     partner.CustomerStatus `json:"status"`
	Contacts   []ContactResponse      `json:"contacts,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// ContactResponse is the outward representation of a customer contact
type ContactResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Position string    `json:"position,omitempty"`
}

// GroupResponse is the outward representation of a group or category
type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VendorResponse is the outward representation of a vendor
type VendorResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseResponse is the outward representation of a warehouse
type WarehouseResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse maps a customer and its contacts to a response
func ToCustomerResponse(c *partner.Customer, contacts []partner.CustomerContact) CustomerResponse {
	resp := CustomerResponse{
		ID:         c.ID,
		Code:       c.Code,
		Name:       c.Name,
		GroupID:    c.GroupID,
		CategoryID: c.CategoryID,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	for _, contact := range contacts {
		resp.Contacts = append(resp.Contacts, ContactResponse{
			ID:       contact.ID,
			Name:     contact.Name,
			Email:    contact.Email,
			Phone:    contact.Phone,
			Position: contact.Position,
		})
	}
	return resp
}

// ToVendorResponse maps a vendor to a response
func ToVendorResponse(v *partner.Vendor) VendorResponse {
	return VendorResponse{
		ID:        v.ID,
		Code:      v.Code,
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		Address:   v.Address,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// ToWarehouseResponse maps a warehouse to a response
func ToWarehouseResponse(w *partner.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.ID,
		Code:      w.Code,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
