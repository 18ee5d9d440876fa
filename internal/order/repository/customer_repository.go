package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/order/domain"
)

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Create(customer *domain.Customer) error {
	return r.db.Create(customer).Error
}

func (r *GormCustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindByCode(code string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.Where("code = ?", code).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindAll(limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&customers).Error
	return customers, err
}

func (r *GormCustomerRepository) Update(customer *domain.Customer) error {
	return r.db.Save(customer).Error
}

// Delete is a hard delete: a tombstoned customer would keep its KH code
// locked in the unique index while Count and FindByCode no longer see it.
func (r *GormCustomerRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&domain.Customer{}, id).Error
}

func (r *GormCustomerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Customer{}).Count(&count).Error
	return count, err
}
