package storefront

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"github.com/minhtv/stockhouse/internal/storefront/middleware"
)

// NewApp builds the public storefront fiber application.
func NewApp(handler *ShopHandler, redisClient *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Stockhouse Shop",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: `{"time":"${time}","request_id":"${locals:requestid}","status":${status},"latency":"${latency}","method":"${method}","path":"${path}"}` + "\n",
	}))
	app.Use(middleware.ShopRateLimiter(redisClient))

	shop := app.Group("/shop")
	shop.Get("/products", handler.ListProducts)
	shop.Get("/products/:id", handler.GetProduct)
	shop.Post("/checkout", handler.Checkout)
	shop.Get("/orders/:code", handler.GetOrder)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	return app
}
