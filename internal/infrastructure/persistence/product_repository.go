package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/catalog"
	"github.com/ims/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ProductRepository implements catalog.ProductRepository using GORM
type ProductRepository struct {
	gormRepository[catalog.Product]
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{newGormRepository[catalog.Product](db, "code", "name")}
}

// FindByCode retrieves a product by its unique code
func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	var product catalog.Product
	err := r.db.WithContext(ctx).First(&product, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CountByGroup counts products referencing a product group
func (r *ProductRepository) CountByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &catalog.Product{}, "group_id", groupID)
}

// CountByUnit counts products referencing a unit of measure
func (r *ProductRepository) CountByUnit(ctx context.Context, unitID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &catalog.Product{}, "unit_id", unitID)
}

// ProductGroupRepository implements catalog.ProductGroupRepository using GORM
type ProductGroupRepository struct {
	gormRepository[catalog.ProductGroup]
}

// NewProductGroupRepository creates a new ProductGroupRepository
func NewProductGroupRepository(db *gorm.DB) *ProductGroupRepository {
	return &ProductGroupRepository{newGormRepository[catalog.ProductGroup](db, "name")}
}

// UnitOfMeasureRepository implements catalog.UnitOfMeasureRepository using GORM
type UnitOfMeasureRepository struct {
	gormRepository[catalog.UnitOfMeasure]
}

// NewUnitOfMeasureRepository creates a new UnitOfMeasureRepository
func NewUnitOfMeasureRepository(db *gorm.DB) *UnitOfMeasureRepository {
	return &UnitOfMeasureRepository{newGormRepository[catalog.UnitOfMeasure](db, "code", "name")}
}

// FindByCode retrieves a unit of measure by its unique code
func (r *UnitOfMeasureRepository) FindByCode(ctx context.Context, code string) (*catalog.UnitOfMeasure, error) {
	var unit catalog.UnitOfMeasure
	err := r.db.WithContext(ctx).First(&unit, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &unit, nil
}
