package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog product. CurrentBalance is the live stock
// count; it starts equal to OpeningBalance and afterwards changes only
// through ProductRepository.AdjustBalance.
type Product struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Code           string         `json:"code" gorm:"uniqueIndex;not null"`
	Name           string         `json:"name" gorm:"not null"`
	Description    string         `json:"description"`
	Unit           string         `json:"unit"`
	Price          *float64       `json:"price"`
	Images         string         `json:"images"`
	CategoryID     *uint          `json:"category_id" gorm:"index"`
	BrandID        *uint          `json:"brand_id" gorm:"index"`
	WarehouseID    *uint          `json:"warehouse_id" gorm:"index"`
	Category       *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Brand          *Brand         `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Warehouse      *Warehouse     `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID"`
	OpeningBalance int            `json:"opening_balance" gorm:"not null;default:0"`
	CurrentBalance int            `json:"current_balance" gorm:"not null;default:0"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// HasSellablePrice reports whether the product can appear on an order.
func (p *Product) HasSellablePrice() bool {
	return p.Price != nil && *p.Price > 0
}

// StockDirection is the sign of a balance adjustment.
type StockDirection string

const (
	StockIncrease StockDirection = "increase"
	StockDecrease StockDirection = "decrease"
)

// Opposite returns the direction that reverses d.
func (d StockDirection) Opposite() StockDirection {
	if d == StockIncrease {
		return StockDecrease
	}
	return StockIncrease
}

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrCodeTaken          = errors.New("product code already exists")
	ErrProductReferenced  = errors.New("product is referenced by movements or orders")
	ErrInvalidDirection   = errors.New("invalid stock direction")
)

// ProductRepository defines the contract for product data access.
// AdjustBalance is the only legal way to change CurrentBalance: it applies
// the signed delta with a single conditional update so a decrease can never
// drive the balance negative, and it runs on the caller's handle (plain or
// transactional) without committing on its own.
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindByCode(code string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
	AdjustBalance(tx *gorm.DB, productID uint, quantity int, direction StockDirection) error
	WithTx(tx *gorm.DB) ProductRepository
}

// ContextReader is the optional read surface for repositories that can join
// an incoming trace. Query handlers fall back to the plain methods when the
// repository does not implement it.
type ContextReader interface {
	FindByIDWithContext(ctx context.Context, id uint) (*Product, error)
	FindAllWithContext(ctx context.Context, limit, offset int) ([]Product, error)
}

// ContextGate is the optional context-aware variant of AdjustBalance.
type ContextGate interface {
	AdjustBalanceWithContext(ctx context.Context, tx *gorm.DB, productID uint, quantity int, direction StockDirection) error
}

// AdjustBalance applies the gate through the repository's context-aware
// variant when it has one, so the balance span joins the caller's trace.
func AdjustBalance(ctx context.Context, repo ProductRepository, tx *gorm.DB, productID uint, quantity int, direction StockDirection) error {
	if gate, ok := repo.(ContextGate); ok {
		return gate.AdjustBalanceWithContext(ctx, tx, productID, quantity, direction)
	}
	return repo.AdjustBalance(tx, productID, quantity, direction)
}
