package command

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/order/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/kafka"
	"github.com/minhtv/stockhouse/pkg/database"
	"github.com/minhtv/stockhouse/pkg/logger"
)

// UpdateOrderCommand represents the command to update an order. Only status
// and notes are mutable; the item list and total stay frozen.
type UpdateOrderCommand struct {
	ID     uint
	Status *domain.OrderStatus
	Notes  *string
}

// UpdateOrderHandler applies a status transition. The stock action is keyed
// on partition membership: leaving the deducted partition restocks every
// item, entering it re-deducts, movement within a partition touches no
// stock. A failed re-deduction aborts the whole update, status included.
type UpdateOrderHandler struct {
	tx       database.TxRunner
	orders   domain.OrderRepository
	products productdomain.ProductRepository
	events   EventPublisher
}

// NewUpdateOrderHandler creates a new update order handler
func NewUpdateOrderHandler(tx database.TxRunner, orders domain.OrderRepository, products productdomain.ProductRepository, events EventPublisher) *UpdateOrderHandler {
	return &UpdateOrderHandler{tx: tx, orders: orders, products: products, events: events}
}

// Handle executes the update order command
func (h *UpdateOrderHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*domain.Order, error) {
	order, err := h.orders.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	action := domain.ActionNone
	if cmd.Status != nil && *cmd.Status != oldStatus {
		action, err = domain.TransitionAction(oldStatus, *cmd.Status)
		if err != nil {
			return nil, err
		}
		order.Status = *cmd.Status
	}
	if cmd.Notes != nil {
		order.Notes = *cmd.Notes
	}

	err = h.tx.Transaction(func(tx *gorm.DB) error {
		switch action {
		case domain.ActionRestock:
			for _, item := range order.Items {
				if err := productdomain.AdjustBalance(ctx, h.products, tx, item.ProductID, item.Quantity, productdomain.StockIncrease); err != nil {
					return fmt.Errorf("failed to restock item: %w", err)
				}
			}
		case domain.ActionDeduct:
			for _, item := range order.Items {
				if err := productdomain.AdjustBalance(ctx, h.products, tx, item.ProductID, item.Quantity, productdomain.StockDecrease); err != nil {
					return err
				}
			}
		}
		if err := h.orders.WithTx(tx).Update(order); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if h.events != nil && cmd.Status != nil && *cmd.Status != oldStatus {
		if err := h.events.PublishOrderStatusChanged(ctx, kafka.OrderStatusChangedEvent{
			OrderID:   order.ID,
			OrderCode: order.Code,
			OldStatus: string(oldStatus),
			NewStatus: string(order.Status),
		}); err != nil {
			logger.Warn(ctx).Err(err).Str("order_code", order.Code).Msg("Failed to publish status change event")
		}
	}

	return h.orders.FindByID(cmd.ID)
}
