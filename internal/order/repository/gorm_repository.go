package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/order/domain"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Customer{}, &domain.Order{}, &domain.OrderItem{})
}

// WithTx returns a repository bound to the given transaction handle.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) domain.OrderRepository {
	return &GormOrderRepository{db: tx}
}

// Create inserts the order together with its items.
func (r *GormOrderRepository) Create(order *domain.Order) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Preload("Customer").Preload("Items").Preload("Items.Product").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByCode(code string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Preload("Customer").Preload("Items").Preload("Items.Product").
		Where("code = ?", code).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Customer").Preload("Items").Preload("Items.Product").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) Update(order *domain.Order) error {
	// Save on the bare struct would upsert items; restrict to order columns.
	return r.db.Model(&domain.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status": order.Status,
			"notes":  order.Notes,
		}).Error
}

// Delete removes the order and cascades to its items.
// Delete removes the order and its items for good. A soft-deleted row would
// keep its code locked in the unique index while staying invisible to Count
// and FindByCode, so code generation would collide forever.
func (r *GormOrderRepository) Delete(order *domain.Order) error {
	if err := r.db.Unscoped().Where("order_id = ?", order.ID).Delete(&domain.OrderItem{}).Error; err != nil {
		return err
	}
	return r.db.Unscoped().Delete(&domain.Order{}, order.ID).Error
}

func (r *GormOrderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) CountByProduct(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.OrderItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) CountByCustomer(customerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	return count, err
}
