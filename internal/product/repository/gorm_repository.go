package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/product/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Category{},
		&domain.Brand{},
		&domain.Warehouse{},
		&domain.Product{},
	)
}

// WithTx returns a repository bound to the given transaction handle.
func (r *GormProductRepository) WithTx(tx *gorm.DB) domain.ProductRepository {
	return &GormProductRepository{db: tx}
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Preload("Category").Preload("Brand").Preload("Warehouse").
		First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByCode(code string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("code = ?", code).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Preload("Category").Preload("Brand").Preload("Warehouse").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

// Delete is a hard delete. Deletion is only reachable once nothing
// references the product, and a tombstone would keep the SP code locked in
// the unique index while Count and FindByCode no longer see it.
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

// AdjustBalance applies a signed quantity delta to current_balance in one
// conditional update. The WHERE clause rejects any decrease that would go
// negative, so two concurrent decrements cannot both pass a stale read.
func (r *GormProductRepository) AdjustBalance(tx *gorm.DB, productID uint, quantity int, direction domain.StockDirection) error {
	if tx == nil {
		tx = r.db
	}
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	var delta int
	switch direction {
	case domain.StockIncrease:
		delta = quantity
	case domain.StockDecrease:
		delta = -quantity
	default:
		return domain.ErrInvalidDirection
	}

	res := tx.Model(&domain.Product{}).
		Where("id = ? AND current_balance + ? >= 0", productID, delta).
		UpdateColumn("current_balance", gorm.Expr("current_balance + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&domain.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrProductNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}
