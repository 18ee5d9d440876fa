package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"

	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	userdomain "github.com/minhtv/stockhouse/internal/user/domain"
)

// MovementDirection tags a stock movement as inward (import) or outward
// (export). The two share one table and one code path; only the sign of
// the balance effect differs.
type MovementDirection string

const (
	DirectionIn  MovementDirection = "in"
	DirectionOut MovementDirection = "out"
)

// Valid reports whether d is a known direction.
func (d MovementDirection) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// CodePrefix returns the document-code prefix for the direction.
func (d MovementDirection) CodePrefix() string {
	if d == DirectionIn {
		return "NH"
	}
	return "XU"
}

// StockEffect returns the balance-gate direction a committed movement of
// this direction applies.
func (d MovementDirection) StockEffect() productdomain.StockDirection {
	if d == DirectionIn {
		return productdomain.StockIncrease
	}
	return productdomain.StockDecrease
}

// StockMovement is a manual, sale-independent stock adjustment. Every
// committed row corresponds to exactly one already-applied balance delta of
// the same magnitude and direction.
type StockMovement struct {
	ID          uint                   `json:"id" gorm:"primaryKey"`
	Code        string                 `json:"code" gorm:"uniqueIndex;not null"`
	Direction   MovementDirection      `json:"direction" gorm:"not null;index"`
	ProductID   uint                   `json:"product_id" gorm:"not null;index"`
	Product     *productdomain.Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity    int                    `json:"quantity" gorm:"not null"`
	UnitPrice   *float64               `json:"unit_price"`
	Note        string                 `json:"note"`
	CreatedByID uint                   `json:"created_by_id" gorm:"index"`
	CreatedBy   *userdomain.User       `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	DeletedAt   gorm.DeletedAt         `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (StockMovement) TableName() string {
	return "stock_movements"
}

var (
	ErrMovementNotFound = errors.New("stock movement not found")
	ErrInvalidDirection = errors.New("invalid movement direction")
)

// MovementRepository defines the contract for stock movement data access
type MovementRepository interface {
	Create(movement *StockMovement) error
	FindByID(id uint) (*StockMovement, error)
	FindByCode(code string) (*StockMovement, error)
	FindAll(direction MovementDirection, limit, offset int) ([]StockMovement, error)
	Update(movement *StockMovement) error
	Delete(id uint) error
	Count(direction MovementDirection) (int64, error)
	CountByProduct(productID uint) (int64, error)
	SumByProduct(productID uint, direction MovementDirection) (int64, error)
	WithTx(tx *gorm.DB) MovementRepository
}
