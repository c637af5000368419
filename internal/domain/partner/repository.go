package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
)

// CustomerRepository persists customers
type CustomerRepository interface {
	shared.Repository[Customer]
	FindByCode(ctx context.Context, code string) (*Customer, error)
	// CountByGroup counts customers referencing a customer group
	CountByGroup(ctx context.Context, groupID uuid.UUID) (int64, error)
	// CountByCategory counts customers referencing a customer category
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// CustomerContactRepository persists customer contacts
type CustomerContactRepository interface {
	shared.Repository[CustomerContact]
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]CustomerContact, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	// DeleteByCustomer removes all contacts of a customer (cascade)
	DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error
}

// CustomerGroupRepository persists customer groups
type CustomerGroupRepository interface {
	shared.Repository[CustomerGroup]
}

// CustomerCategoryRepository persists customer categories
type CustomerCategoryRepository interface {
	shared.Repository[CustomerCategory]
}

// VendorRepository persists vendors
type VendorRepository interface {
	shared.Repository[Vendor]
	FindByCode(ctx context.Context, code string) (*Vendor, error)
}

// WarehouseRepository persists warehouses
type WarehouseRepository interface {
	shared.Repository[Warehouse]
	FindByCode(ctx context.Context, code string) (*Warehouse, error)
}
