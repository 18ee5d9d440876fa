package command

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/order/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/kafka"
	"github.com/minhtv/stockhouse/pkg/codegen"
	"github.com/minhtv/stockhouse/pkg/database"
	"github.com/minhtv/stockhouse/pkg/logger"
)

const orderCodePrefix = "DH"

// EventPublisher publishes order lifecycle events. The kafka publisher
// implements it; a nil publisher disables events.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event kafka.OrderCreatedEvent) error
	PublishOrderStatusChanged(ctx context.Context, event kafka.OrderStatusChangedEvent) error
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductID uint
	Quantity  int
}

// CreateOrderCommand represents the command to create an order
type CreateOrderCommand struct {
	CustomerID uint
	Items      []OrderItemRequest
	Notes      string
}

// CreateOrderHandler creates an order. The order row, its items, and the
// per-item balance deductions commit or roll back as one unit: if any item
// cannot be covered by stock, no order and no partial deduction survives.
type CreateOrderHandler struct {
	tx        database.TxRunner
	orders    domain.OrderRepository
	customers domain.CustomerRepository
	products  productdomain.ProductRepository
	events    EventPublisher
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(tx database.TxRunner, orders domain.OrderRepository, customers domain.CustomerRepository, products productdomain.ProductRepository, events EventPublisher) *CreateOrderHandler {
	return &CreateOrderHandler{tx: tx, orders: orders, customers: customers, products: products, events: events}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	customer, err := h.customers.FindByID(cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	if len(cmd.Items) == 0 {
		return nil, domain.ErrNoItems
	}

	// Snapshot prices and compute the frozen total before touching stock.
	var total float64
	items := make([]domain.OrderItem, 0, len(cmd.Items))
	for _, req := range cmd.Items {
		if req.Quantity < 1 {
			return nil, productdomain.ErrInvalidQuantity
		}
		product, err := h.products.FindByID(req.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.HasSellablePrice() {
			return nil, fmt.Errorf("%w: %s", domain.ErrPriceMissing, product.Name)
		}

		subtotal := *product.Price * float64(req.Quantity)
		total += subtotal
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Quantity:  req.Quantity,
			Price:     *product.Price,
			Subtotal:  subtotal,
		})
	}

	code, err := h.generateCode()
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		Code:       code,
		CustomerID: customer.ID,
		Total:      total,
		Status:     domain.StatusPending,
		Notes:      cmd.Notes,
		Items:      items,
	}

	err = h.tx.Transaction(func(tx *gorm.DB) error {
		if err := h.orders.WithTx(tx).Create(order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for _, item := range order.Items {
			if err := productdomain.AdjustBalance(ctx, h.products, tx, item.ProductID, item.Quantity, productdomain.StockDecrease); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := h.orders.FindByID(order.ID)
	if err != nil {
		return nil, err
	}

	if h.events != nil {
		if err := h.events.PublishOrderCreated(ctx, kafka.OrderCreatedEvent{
			OrderID:    created.ID,
			OrderCode:  created.Code,
			CustomerID: created.CustomerID,
			Total:      created.Total,
			ItemCount:  len(created.Items),
		}); err != nil {
			logger.Warn(ctx).Err(err).Str("order_code", created.Code).Msg("Failed to publish order created event")
		}
	}

	return created, nil
}

func (h *CreateOrderHandler) generateCode() (string, error) {
	count, err := h.orders.Count()
	if err != nil {
		return "", fmt.Errorf("failed to count orders: %w", err)
	}
	code := codegen.Sequential(orderCodePrefix, count)
	if _, err := h.orders.FindByCode(code); err == nil {
		code = codegen.Fallback(orderCodePrefix)
	}
	return code, nil
}
