package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/inventory/domain"
)

type GormMovementRepository struct {
	db *gorm.DB
}

func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

func (r *GormMovementRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.StockMovement{})
}

// WithTx returns a repository bound to the given transaction handle.
func (r *GormMovementRepository) WithTx(tx *gorm.DB) domain.MovementRepository {
	return &GormMovementRepository{db: tx}
}

func (r *GormMovementRepository) Create(movement *domain.StockMovement) error {
	return r.db.Create(movement).Error
}

func (r *GormMovementRepository) FindByID(id uint) (*domain.StockMovement, error) {
	var movement domain.StockMovement
	err := r.db.Preload("Product").Preload("CreatedBy").First(&movement, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrMovementNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

func (r *GormMovementRepository) FindByCode(code string) (*domain.StockMovement, error) {
	var movement domain.StockMovement
	err := r.db.Where("code = ?", code).First(&movement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrMovementNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

// FindAll lists movements newest first. An empty direction matches both.
func (r *GormMovementRepository) FindAll(direction domain.MovementDirection, limit, offset int) ([]domain.StockMovement, error) {
	var movements []domain.StockMovement
	q := r.db.Preload("Product").Preload("CreatedBy").Order("created_at DESC")
	if direction != "" {
		q = q.Where("direction = ?", direction)
	}
	err := q.Limit(limit).Offset(offset).Find(&movements).Error
	return movements, err
}

func (r *GormMovementRepository) Update(movement *domain.StockMovement) error {
	return r.db.Save(movement).Error
}

// Delete is a hard delete. The balance effect has already been reversed by
// the caller, and a tombstone would keep the NH/XU code locked in the unique
// index while Count no longer advances past it.
func (r *GormMovementRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&domain.StockMovement{}, id).Error
}

func (r *GormMovementRepository) Count(direction domain.MovementDirection) (int64, error) {
	var count int64
	q := r.db.Model(&domain.StockMovement{})
	if direction != "" {
		q = q.Where("direction = ?", direction)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *GormMovementRepository) CountByProduct(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.StockMovement{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *GormMovementRepository) SumByProduct(productID uint, direction domain.MovementDirection) (int64, error) {
	var sum int64
	err := r.db.Model(&domain.StockMovement{}).
		Where("product_id = ? AND direction = ?", productID, direction).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&sum).Error
	return sum, err
}
