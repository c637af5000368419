package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// CustomerRepository implements partner.CustomerRepository using GORM
type CustomerRepository struct {
	gormRepository[partner.Customer]
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{newGormRepository[partner.Customer](db, "code", "name", "email")}
}

// FindByCode retrieves a customer by its unique code
func (r *CustomerRepository) FindByCode(ctx context.Context, code string) (*partner.Customer, error) {
	var customer partner.Customer
	err := r.db.WithContext(ctx).First(&customer, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// CountByGroup counts customers referencing a customer group
func (r *CustomerRepository) CountByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &partner.Customer{}, "group_id", groupID)
}

// CountByCategory counts customers referencing a customer category
func (r *CustomerRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &partner.Customer{}, "category_id", categoryID)
}

// CustomerContactRepository implements partner.CustomerContactRepository using GORM
type CustomerContactRepository struct {
	gormRepository[partner.CustomerContact]
}

// NewCustomerContactRepository creates a new CustomerContactRepository
func NewCustomerContactRepository(db *gorm.DB) *CustomerContactRepository {
	return &CustomerContactRepository{newGormRepository[partner.CustomerContact](db, "name", "email")}
}

// FindByCustomer retrieves all contacts of a customer
func (r *CustomerContactRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]partner.CustomerContact, error) {
	var contacts []partner.CustomerContact
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("created_at").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// CountByCustomer counts the contacts of a customer
func (r *CustomerContactRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return countWhere(ctx, r.db, &partner.CustomerContact{}, "customer_id", customerID)
}

// DeleteByCustomer removes all contacts of a customer
func (r *CustomerContactRepository) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&partner.CustomerContact{}, "customer_id = ?", customerID).Error
}

// CustomerGroupRepository implements partner.CustomerGroupRepository using GORM
type CustomerGroupRepository struct {
	gormRepository[partner.CustomerGroup]
}

// NewCustomerGroupRepository creates a new CustomerGroupRepository
func NewCustomerGroupRepository(db *gorm.DB) *CustomerGroupRepository {
	return &CustomerGroupRepository{newGormRepository[partner.CustomerGroup](db, "name")}
}

// CustomerCategoryRepository implements partner.CustomerCategoryRepository using GORM
type CustomerCategoryRepository struct {
	gormRepository[partner.CustomerCategory]
}

// NewCustomerCategoryRepository creates a new CustomerCategoryRepository
func NewCustomerCategoryRepository(db *gorm.DB) *CustomerCategoryRepository {
	return &CustomerCategoryRepository{newGormRepository[partner.CustomerCategory](db, "name")}
}
