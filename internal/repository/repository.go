// internal/repository/repository.go

// Package repository holds the GORM-backed data access layer. Module
// packages declare the narrow interfaces they consume; the types here
// satisfy them.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/database"
)

// ErrNotFound is the sentinel callers test with errors.Is to distinguish a
// miss from a store failure.
var ErrNotFound = errors.New("record not found")

// Repository is the generic CRUD base embedded by every entity repository.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) conn(ctx context.Context) *gorm.DB {
	return database.TxFromContext(ctx, r.db)
}

func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.conn(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &entity, nil
}

// First returns the first row matching the query, ErrNotFound on a miss.
func (r *Repository[T]) First(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var entity T
	if err := r.conn(ctx).Where(query, args...).First(&entity).Error; err != nil {
		return nil, mapErr(err)
	}
	return &entity, nil
}

func (r *Repository[T]) Find(ctx context.Context, query string, args ...interface{}) ([]T, error) {
	var entities []T
	if err := r.conn(ctx).Where(query, args...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	return r.conn(ctx).Create(entity).Error
}

func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	return r.conn(ctx).Save(entity).Error
}

// Remove soft-deletes: models carry gorm.DeletedAt, so rows are stamped,
// never dropped.
func (r *Repository[T]) Remove(ctx context.Context, entity *T) error {
	return r.conn(ctx).Delete(entity).Error
}

func (r *Repository[T]) Count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var entity T
	var count int64
	q := r.conn(ctx).Model(&entity)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
