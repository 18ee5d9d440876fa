package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormReferenceRepository is the shared CRUD implementation for the
// reference-data entities (Category, Brand, Warehouse).
type GormReferenceRepository[T any] struct {
	db *gorm.DB
}

func NewGormReferenceRepository[T any](db *gorm.DB) *GormReferenceRepository[T] {
	return &GormReferenceRepository[T]{db: db}
}

func (r *GormReferenceRepository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

func (r *GormReferenceRepository[T]) FindByID(id uint) (*T, error) {
	var entity T
	err := r.db.First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("record %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *GormReferenceRepository[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.db.Order("created_at DESC").Find(&entities).Error
	return entities, err
}

func (r *GormReferenceRepository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

// Delete is a hard delete so a re-created entry with the same name does not
// collide with a tombstone in the unique index.
func (r *GormReferenceRepository[T]) Delete(id uint) error {
	var entity T
	return r.db.Unscoped().Delete(&entity, id).Error
}
