package command

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/inventory/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/pkg/database"
)

// UpdateMovementCommand represents the command to edit a stock movement.
// Nil fields are left unchanged. Direction is immutable: an import stays an
// import.
type UpdateMovementCommand struct {
	ID        uint
	ProductID *uint
	Quantity  *int
	UnitPrice *float64
	Note      *string
}

// UpdateMovementHandler edits a recorded movement. When the product or
// quantity changes, the original delta is reversed and the new one applied
// inside the same transaction as the row update, so a failed reapply leaves
// both the balances and the record untouched.
type UpdateMovementHandler struct {
	tx        database.TxRunner
	movements domain.MovementRepository
	products  productdomain.ProductRepository
}

// NewUpdateMovementHandler creates a new update movement handler
func NewUpdateMovementHandler(tx database.TxRunner, movements domain.MovementRepository, products productdomain.ProductRepository) *UpdateMovementHandler {
	return &UpdateMovementHandler{tx: tx, movements: movements, products: products}
}

// Handle executes the update movement command
func (h *UpdateMovementHandler) Handle(cmd UpdateMovementCommand) (*domain.StockMovement, error) {
	movement, err := h.movements.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Quantity != nil && *cmd.Quantity <= 0 {
		return nil, productdomain.ErrInvalidQuantity
	}

	oldProductID := movement.ProductID
	oldQuantity := movement.Quantity

	newProductID := oldProductID
	if cmd.ProductID != nil {
		newProductID = *cmd.ProductID
	}
	newQuantity := oldQuantity
	if cmd.Quantity != nil {
		newQuantity = *cmd.Quantity
	}

	if newProductID != oldProductID {
		if _, err := h.products.FindByID(newProductID); err != nil {
			return nil, err
		}
	}

	stockChanged := newProductID != oldProductID || newQuantity != oldQuantity

	movement.ProductID = newProductID
	movement.Quantity = newQuantity
	if cmd.UnitPrice != nil {
		movement.UnitPrice = cmd.UnitPrice
	}
	if cmd.Note != nil {
		movement.Note = *cmd.Note
	}
	// Break the stale preloaded relation before saving.
	movement.Product = nil

	err = h.tx.Transaction(func(tx *gorm.DB) error {
		if stockChanged {
			effect := movement.Direction.StockEffect()
			if err := h.products.AdjustBalance(tx, oldProductID, oldQuantity, effect.Opposite()); err != nil {
				return fmt.Errorf("failed to reverse original movement: %w", err)
			}
			if err := h.products.AdjustBalance(tx, newProductID, newQuantity, effect); err != nil {
				return fmt.Errorf("failed to apply edited movement: %w", err)
			}
		}
		if err := h.movements.WithTx(tx).Update(movement); err != nil {
			return fmt.Errorf("failed to update movement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return h.movements.FindByID(cmd.ID)
}
