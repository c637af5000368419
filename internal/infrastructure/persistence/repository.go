// Package persistence implements the repository interfaces on gorm.
// Each repository treats its table as a plain record store: single-row
// reads and writes, no cross-table transactions.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// gormRepository is the generic base every concrete repository embeds.
// searchColumns are the columns a Filter.Search term matches against.
type gormRepository[T any] struct {
	db            *gorm.DB
	searchColumns []string
}

func newGormRepository[T any](db *gorm.DB, searchColumns ...string) gormRepository[T] {
	return gormRepository[T]{db: db, searchColumns: searchColumns}
}

// FindByID retrieves one record by primary key
func (r *gormRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindAll retrieves records matching the filter
func (r *gormRepository[T]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	var entities []T
	query := r.applyFilter(r.db.WithContext(ctx).Model(new(T)), filter)

	if filter.OrderBy != "" {
		dir := "asc"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "desc"
		}
		query = query.Order(fmt.Sprintf("%s %s", filter.OrderBy, dir))
	}
	if filter.PageSize > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Save inserts or replaces one record
func (r *gormRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete removes one record by primary key
func (r *gormRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error
}

// Count counts records matching the filter
func (r *gormRepository[T]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(new(T)), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *gormRepository[T]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for column, value := range filter.Filters {
		query = query.Where(fmt.Sprintf("%s = ?", column), value)
	}
	if filter.Search != "" && len(r.searchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		clauses := make([]string, 0, len(r.searchColumns))
		args := make([]interface{}, 0, len(r.searchColumns))
		for _, column := range r.searchColumns {
			clauses = append(clauses, fmt.Sprintf("%s LIKE ?", column))
			args = append(args, pattern)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}
	return query
}

// countWhere counts rows of model matching one column value
func countWhere(ctx context.Context, db *gorm.DB, model interface{}, column string, value interface{}) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where(fmt.Sprintf("%s = ?", column), value).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
