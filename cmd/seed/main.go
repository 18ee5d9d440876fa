package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	inventorydomain "github.com/minhtv/stockhouse/internal/inventory/domain"
	inventorycmd "github.com/minhtv/stockhouse/internal/inventory/usecase/command"
	inventoryrepo "github.com/minhtv/stockhouse/internal/inventory/repository"
	ordercmd "github.com/minhtv/stockhouse/internal/order/usecase/command"
	orderrepo "github.com/minhtv/stockhouse/internal/order/repository"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	productcmd "github.com/minhtv/stockhouse/internal/product/usecase/command"
	productrepo "github.com/minhtv/stockhouse/internal/product/repository"
	usercmd "github.com/minhtv/stockhouse/internal/user/usecase/command"
	userrepo "github.com/minhtv/stockhouse/internal/user/repository"
	"github.com/minhtv/stockhouse/pkg/database"
	"github.com/minhtv/stockhouse/pkg/logger"
)

// Seeds a fresh database with demo data: an admin account, reference
// data, a small catalog, one stocked-up import per product, a customer
// and a sample order. Running it twice will fail on unique codes.
func main() {
	_ = godotenv.Load()
	logger.Init("stockhouse-seed", true)

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "stockhouse"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	userRepository := userrepo.NewGormUserRepository(db)
	productRepository := productrepo.NewGormProductRepository(db)
	movementRepository := inventoryrepo.NewGormMovementRepository(db)
	orderRepository := orderrepo.NewGormOrderRepository(db)
	customerRepository := orderrepo.NewGormCustomerRepository(db)

	for _, migrate := range []func() error{
		productRepository.AutoMigrate,
		movementRepository.AutoMigrate,
		orderRepository.AutoMigrate,
		userRepository.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Migration failed")
		}
	}

	// Admin account
	admin, err := usercmd.NewCreateUserHandler(userRepository).Handle(usercmd.CreateUserCommand{
		Username: "admin",
		Password: "admin123",
		FullName: "Administrator",
		Email:    "admin@stockhouse.local",
		Role:     "admin",
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create admin account")
	}

	// Reference data
	category := productdomain.Category{Name: "Beverages", Description: "Drinks and juices"}
	if err := db.Create(&category).Error; err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create category")
	}
	brand := productdomain.Brand{Name: "Highland"}
	if err := db.Create(&brand).Error; err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create brand")
	}
	warehouse := productdomain.Warehouse{Name: "Central", Address: "12 Dock Street"}
	if err := db.Create(&warehouse).Error; err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create warehouse")
	}

	// Catalog
	createProduct := productcmd.NewCreateProductHandler(productRepository)
	createMovement := inventorycmd.NewCreateMovementHandler(db, movementRepository, productRepository)

	catalog := []struct {
		name    string
		unit    string
		price   float64
		opening int
		restock int
	}{
		{"Ground Coffee 500g", "bag", 9.5, 20, 80},
		{"Green Tea 100g", "box", 4.2, 0, 150},
		{"Orange Juice 1L", "bottle", 2.8, 50, 100},
	}

	var productIDs []uint
	for _, item := range catalog {
		price := item.price
		product, err := createProduct.Handle(productcmd.CreateProductCommand{
			Name:           item.name,
			Unit:           item.unit,
			Price:          &price,
			CategoryID:     &category.ID,
			BrandID:        &brand.ID,
			WarehouseID:    &warehouse.ID,
			OpeningBalance: item.opening,
		})
		if err != nil {
			logger.Logger.Fatal().Err(err).Str("product", item.name).Msg("Failed to create product")
		}
		productIDs = append(productIDs, product.ID)

		if _, err := createMovement.Handle(inventorycmd.CreateMovementCommand{
			Direction:   inventorydomain.DirectionIn,
			ProductID:   product.ID,
			Quantity:    item.restock,
			UnitPrice:   &price,
			Note:        "Initial stock intake",
			CreatedByID: admin.ID,
		}); err != nil {
			logger.Logger.Fatal().Err(err).Str("product", item.name).Msg("Failed to record import")
		}
	}

	// A customer and one sample order
	customer, err := ordercmd.NewCreateCustomerHandler(customerRepository).Handle(ordercmd.CreateCustomerCommand{
		Name:  "Walk-in Customer",
		Phone: "0900000001",
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create customer")
	}

	createOrder := ordercmd.NewCreateOrderHandler(db, orderRepository, customerRepository, productRepository, nil)
	order, err := createOrder.Handle(context.Background(), ordercmd.CreateOrderCommand{
		CustomerID: customer.ID,
		Items: []ordercmd.OrderItemRequest{
			{ProductID: productIDs[0], Quantity: 2},
			{ProductID: productIDs[2], Quantity: 6},
		},
		Notes: "Demo order",
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create sample order")
	}

	logger.Logger.Info().
		Str("admin", admin.Username).
		Str("order", order.Code).
		Int("products", len(productIDs)).
		Msg("Seed completed")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
