package storefront

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	orderdomain "github.com/minhtv/stockhouse/internal/order/domain"
	"github.com/minhtv/stockhouse/internal/order/usecase/command"
	orderquery "github.com/minhtv/stockhouse/internal/order/usecase/query"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	productquery "github.com/minhtv/stockhouse/internal/product/usecase/query"
	"github.com/minhtv/stockhouse/pkg/database"
	"github.com/minhtv/stockhouse/pkg/logger"
)

// ShopHandler serves the public storefront: catalog browsing, checkout,
// and order tracking by code. It reuses the back-office usecases, so the
// balance gate guards checkout exactly as it guards staff-created orders.
type ShopHandler struct {
	listProducts *productquery.ListProductsHandler
	getProduct   *productquery.GetProductHandler

	createCustomer *command.CreateCustomerHandler
	createOrder    *command.CreateOrderHandler
	getOrder       *orderquery.GetOrderHandler
}

// NewShopHandler creates a new shop handler
func NewShopHandler(
	tx database.TxRunner,
	products productdomain.ProductRepository,
	orders orderdomain.OrderRepository,
	customers orderdomain.CustomerRepository,
	events command.EventPublisher,
) *ShopHandler {
	return &ShopHandler{
		listProducts:   productquery.NewListProductsHandler(products),
		getProduct:     productquery.NewGetProductHandler(products),
		createCustomer: command.NewCreateCustomerHandler(customers),
		createOrder:    command.NewCreateOrderHandler(tx, orders, customers, products, events),
		getOrder:       orderquery.NewGetOrderHandler(orders),
	}
}

// shopProduct is the public projection of a product. Balances stay
// internal; the shop only sees whether the item can be bought.
type shopProduct struct {
	ID          uint     `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
	Price       *float64 `json:"price"`
	Images      string   `json:"images"`
	InStock     bool     `json:"in_stock"`
}

func toShopProduct(p *productdomain.Product) shopProduct {
	return shopProduct{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Unit:        p.Unit,
		Price:       p.Price,
		Images:      p.Images,
		InStock:     p.CurrentBalance > 0,
	}
}

// ListProducts handles GET /shop/products
func (h *ShopHandler) ListProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	products, err := h.listProducts.HandleContext(c.UserContext(), productquery.ListProductsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list shop products")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list products",
		})
	}

	// Only priced products are shown in the shop.
	items := make([]shopProduct, 0, len(products))
	for i := range products {
		if products[i].HasSellablePrice() {
			items = append(items, toShopProduct(&products[i]))
		}
	}

	return c.JSON(fiber.Map{"products": items})
}

// GetProduct handles GET /shop/products/:id
func (h *ShopHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.getProduct.HandleContext(c.UserContext(), productquery.GetProductQuery{ID: uint(id)})
	if err != nil || !product.HasSellablePrice() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	return c.JSON(toShopProduct(product))
}

// Checkout handles POST /shop/checkout
func (h *ShopHandler) Checkout(c *fiber.Ctx) error {
	var req struct {
		CustomerName  string `json:"customer_name"`
		CustomerPhone string `json:"customer_phone"`
		Items         []struct {
			ProductID uint `json:"product_id"`
			Quantity  int  `json:"quantity"`
		} `json:"items"`
		Notes string `json:"notes"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	customer, err := h.createCustomer.Handle(command.CreateCustomerCommand{
		Name:  req.CustomerName,
		Phone: req.CustomerPhone,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cmd := command.CreateOrderCommand{
		CustomerID: customer.ID,
		Notes:      req.Notes,
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, command.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.createOrder.Handle(c.UserContext(), cmd)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Checkout failed")
		status := fiber.StatusBadRequest
		if errors.Is(err, productdomain.ErrInsufficientStock) {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order_code": order.Code,
		"total":      order.Total,
		"status":     order.Status,
	})
}

// GetOrder handles GET /shop/orders/:code
func (h *ShopHandler) GetOrder(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Order code required"})
	}

	order, err := h.getOrder.Handle(orderquery.GetOrderQuery{Code: code})
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	items := make([]fiber.Map, 0, len(order.Items))
	for _, item := range order.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, fiber.Map{
			"product_name": name,
			"quantity":     item.Quantity,
			"price":        item.Price,
			"subtotal":     item.Subtotal,
		})
	}

	return c.JSON(fiber.Map{
		"code":       order.Code,
		"status":     order.Status,
		"total":      order.Total,
		"items":      items,
		"created_at": order.CreatedAt,
	})
}
