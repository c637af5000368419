package persistence

import (
	"context"
	"errors"

	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// VendorRepository implements partner.VendorRepository using GORM
type VendorRepository struct {
	gormRepository[partner.Vendor]
}

// NewVendorRepository creates a new VendorRepository
func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{newGormRepository[partner.Vendor](db, "code", "name", "email")}
}

// FindByCode retrieves a vendor by its unique code
func (r *VendorRepository) FindByCode(ctx context.Context, code string) (*partner.Vendor, error) {
	var vendor partner.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// WarehouseRepository implements partner.WarehouseRepository using GORM
type WarehouseRepository struct {
	gormRepository[partner.Warehouse]
}

// NewWarehouseRepository creates a new WarehouseRepository
func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{newGormRepository[partner.Warehouse](db, "code", "name")}
}

// FindByCode retrieves a warehouse by its unique code
func (r *WarehouseRepository) FindByCode(ctx context.Context, code string) (*partner.Warehouse, error) {
	var warehouse partner.Warehouse
	err := r.db.WithContext(ctx).First(&warehouse, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}
