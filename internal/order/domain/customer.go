package domain

import (
	"time"

	"gorm.io/gorm"
)

// Customer owns orders. No stock interaction.
type Customer struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Code      string         `json:"code" gorm:"uniqueIndex;not null"`
	Name      string         `json:"name" gorm:"not null"`
	Phone     string         `json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id uint) (*Customer, error)
	FindByCode(code string) (*Customer, error)
	FindAll(limit, offset int) ([]Customer, error)
	Update(customer *Customer) error
	Delete(id uint) error
	Count() (int64, error)
}
