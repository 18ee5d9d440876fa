package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"

	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
)

// Order is a customer sale. Total and the line items are frozen at creation
// time; only Status and Notes are mutable afterwards.
type Order struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Code       string         `json:"code" gorm:"uniqueIndex;not null"`
	CustomerID uint           `json:"customer_id" gorm:"not null;index"`
	Customer   *Customer      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Total      float64        `json:"total" gorm:"not null"`
	Status     OrderStatus    `json:"status" gorm:"not null;default:'pending'"`
	Notes      string         `json:"notes"`
	Items      []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one order line. Price is a snapshot of the product price at
// order creation and is never recomputed from the live product.
type OrderItem struct {
	ID        uint                   `json:"id" gorm:"primaryKey"`
	OrderID   uint                   `json:"order_id" gorm:"not null;index"`
	ProductID uint                   `json:"product_id" gorm:"not null;index"`
	Product   *productdomain.Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int                    `json:"quantity" gorm:"not null"`
	Price     float64                `json:"price" gorm:"not null"`
	Subtotal  float64                `json:"subtotal" gorm:"not null"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNoItems          = errors.New("order must have at least one item")
	ErrPriceMissing     = errors.New("product has no selling price")
	ErrUnknownStatus    = errors.New("unknown order status")
	ErrCustomerInUse    = errors.New("customer has orders")
)

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id uint) (*Order, error)
	FindByCode(code string) (*Order, error)
	FindAll(limit, offset int) ([]Order, error)
	Update(order *Order) error
	Delete(order *Order) error
	Count() (int64, error)
	CountByProduct(productID uint) (int64, error)
	CountByCustomer(customerID uint) (int64, error)
	WithTx(tx *gorm.DB) OrderRepository
}
