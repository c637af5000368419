package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
)

// ProductRepository persists products
type ProductRepository interface {
	shared.Repository[Product]
	FindByCode(ctx context.Context, code string) (*Product, error)
	// CountByGroup counts products referencing a product group
	CountByGroup(ctx context.Context, groupID uuid.UUID) (int64, error)
	// CountByUnit counts products referencing a unit of measure
	CountByUnit(ctx context.Context, unitID uuid.UUID) (int64, error)
}

// ProductGroupRepository persists product groups
type ProductGroupRepository interface {
	shared.Repository[ProductGroup]
}

// UnitOfMeasureRepository persists units of measure
type UnitOfMeasureRepository interface {
	shared.Repository[UnitOfMeasure]
	FindByCode(ctx context.Context, code string) (*UnitOfMeasure, error)
}
