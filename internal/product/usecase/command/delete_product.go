package command

import (
	"fmt"

	"github.com/minhtv/stockhouse/internal/product/domain"
)

// ReferenceCounter reports how many rows of some entity reference a product.
// The stock-movement and order-item repositories both implement it.
type ReferenceCounter interface {
	CountByProduct(productID uint) (int64, error)
}

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion. Deletion is refused while
// any historical record still points at the product, so the ledger stays
// interpretable.
type DeleteProductHandler struct {
	repo     domain.ProductRepository
	counters []ReferenceCounter
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository, counters ...ReferenceCounter) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, counters: counters}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid product id")
	}

	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return err
	}

	for _, counter := range h.counters {
		count, err := counter.CountByProduct(cmd.ID)
		if err != nil {
			return fmt.Errorf("failed to check product references: %w", err)
		}
		if count > 0 {
			return domain.ErrProductReferenced
		}
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
