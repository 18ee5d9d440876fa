package command

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/inventory/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/pkg/codegen"
	"github.com/minhtv/stockhouse/pkg/database"
)

// CreateMovementCommand represents the command to record a stock movement
type CreateMovementCommand struct {
	Direction   domain.MovementDirection
	ProductID   uint
	Quantity    int
	UnitPrice   *float64
	Note        string
	CreatedByID uint
}

// CreateMovementHandler records a manual import or export. The row insert
// and the balance delta commit or roll back together; an outward movement
// that would overdraw the balance fails the whole create.
type CreateMovementHandler struct {
	tx        database.TxRunner
	movements domain.MovementRepository
	products  productdomain.ProductRepository
}

// NewCreateMovementHandler creates a new create movement handler
func NewCreateMovementHandler(tx database.TxRunner, movements domain.MovementRepository, products productdomain.ProductRepository) *CreateMovementHandler {
	return &CreateMovementHandler{tx: tx, movements: movements, products: products}
}

// Handle executes the create movement command
func (h *CreateMovementHandler) Handle(cmd CreateMovementCommand) (*domain.StockMovement, error) {
	if !cmd.Direction.Valid() {
		return nil, domain.ErrInvalidDirection
	}
	if cmd.Quantity <= 0 {
		return nil, productdomain.ErrInvalidQuantity
	}
	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return nil, err
	}

	code, err := h.generateCode(cmd.Direction)
	if err != nil {
		return nil, err
	}

	movement := &domain.StockMovement{
		Code:        code,
		Direction:   cmd.Direction,
		ProductID:   cmd.ProductID,
		Quantity:    cmd.Quantity,
		UnitPrice:   cmd.UnitPrice,
		Note:        cmd.Note,
		CreatedByID: cmd.CreatedByID,
	}

	err = h.tx.Transaction(func(tx *gorm.DB) error {
		if err := h.movements.WithTx(tx).Create(movement); err != nil {
			return fmt.Errorf("failed to create movement: %w", err)
		}
		return h.products.AdjustBalance(tx, cmd.ProductID, cmd.Quantity, cmd.Direction.StockEffect())
	})
	if err != nil {
		return nil, err
	}

	return movement, nil
}

func (h *CreateMovementHandler) generateCode(direction domain.MovementDirection) (string, error) {
	count, err := h.movements.Count(direction)
	if err != nil {
		return "", fmt.Errorf("failed to count movements: %w", err)
	}
	code := codegen.Sequential(direction.CodePrefix(), count)
	if _, err := h.movements.FindByCode(code); err == nil {
		code = codegen.Fallback(direction.CodePrefix())
	}
	return code, nil
}
