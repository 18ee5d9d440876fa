package command

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/inventory/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/pkg/database"
)

// DeleteMovementCommand represents the command to delete a stock movement
type DeleteMovementCommand struct {
	ID uint
}

// DeleteMovementHandler removes a movement, reversing its balance effect in
// the same transaction. Deleting an import from a product whose balance has
// since been spent fails with insufficient stock and leaves the record.
type DeleteMovementHandler struct {
	tx        database.TxRunner
	movements domain.MovementRepository
	products  productdomain.ProductRepository
}

// NewDeleteMovementHandler creates a new delete movement handler
func NewDeleteMovementHandler(tx database.TxRunner, movements domain.MovementRepository, products productdomain.ProductRepository) *DeleteMovementHandler {
	return &DeleteMovementHandler{tx: tx, movements: movements, products: products}
}

// Handle executes the delete movement command
func (h *DeleteMovementHandler) Handle(cmd DeleteMovementCommand) error {
	movement, err := h.movements.FindByID(cmd.ID)
	if err != nil {
		return err
	}

	return h.tx.Transaction(func(tx *gorm.DB) error {
		reverse := movement.Direction.StockEffect().Opposite()
		if err := h.products.AdjustBalance(tx, movement.ProductID, movement.Quantity, reverse); err != nil {
			return fmt.Errorf("failed to reverse movement: %w", err)
		}
		if err := h.movements.WithTx(tx).Delete(movement.ID); err != nil {
			return fmt.Errorf("failed to delete movement: %w", err)
		}
		return nil
	})
}
