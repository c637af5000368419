package persistence

import (
	"github.com/ims/backend/internal/domain/finance"
	"gorm.io/gorm"
)

// TaxRepository implements finance.TaxRepository using GORM
type TaxRepository struct {
	gormRepository[finance.Tax]
}

// NewTaxRepository creates a new TaxRepository
func NewTaxRepository(db *gorm.DB) *TaxRepository {
	return &TaxRepository{newGormRepository[finance.Tax](db, "name")}
}
