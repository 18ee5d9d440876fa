package command

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/order/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/pkg/database"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	ID uint
}

// DeleteOrderHandler deletes an order. An order in a deducted status still
// holds stock, so deletion restocks every item first; this includes a
// pending order that was never transitioned. Orders in a restocked status
// already gave their stock back and are simply removed.
type DeleteOrderHandler struct {
	tx       database.TxRunner
	orders   domain.OrderRepository
	products productdomain.ProductRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(tx database.TxRunner, orders domain.OrderRepository, products productdomain.ProductRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{tx: tx, orders: orders, products: products}
}

// Handle executes the delete order command
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	order, err := h.orders.FindByID(cmd.ID)
	if err != nil {
		return err
	}

	partition := domain.StatusPartition(order.Status)
	if partition == domain.PartitionUnknown {
		return fmt.Errorf("%w: %q", domain.ErrUnknownStatus, order.Status)
	}

	return h.tx.Transaction(func(tx *gorm.DB) error {
		if partition == domain.PartitionDeducted {
			for _, item := range order.Items {
				if err := h.products.AdjustBalance(tx, item.ProductID, item.Quantity, productdomain.StockIncrease); err != nil {
					return fmt.Errorf("failed to restock item: %w", err)
				}
			}
		}
		if err := h.orders.WithTx(tx).Delete(order); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
}
