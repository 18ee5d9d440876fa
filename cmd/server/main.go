package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/minhtv/stockhouse/docs"
	inventoryhttp "github.com/minhtv/stockhouse/internal/inventory/delivery/http"
	inventoryrepo "github.com/minhtv/stockhouse/internal/inventory/repository"
	orderhttp "github.com/minhtv/stockhouse/internal/order/delivery/http"
	orderrepo "github.com/minhtv/stockhouse/internal/order/repository"
	producthttp "github.com/minhtv/stockhouse/internal/product/delivery/http"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	productrepo "github.com/minhtv/stockhouse/internal/product/repository"
	"github.com/minhtv/stockhouse/internal/storefront"
	userhttp "github.com/minhtv/stockhouse/internal/user/delivery/http"
	userrepo "github.com/minhtv/stockhouse/internal/user/repository"
	"github.com/minhtv/stockhouse/kafka"
	"github.com/minhtv/stockhouse/pkg/database"
	"github.com/minhtv/stockhouse/pkg/logger"
	"github.com/minhtv/stockhouse/pkg/tracing"
)

// @title Stockhouse API
// @version 1.0
// @description Inventory and order management backend
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real deployments use the environment directly
	_ = godotenv.Load()

	serviceName := getEnv("OTEL_SERVICE_NAME", "stockhouse")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting stockhouse")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
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

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Repositories
	userRepository := userrepo.NewGormUserRepository(db)
	productRepository := productrepo.NewGormProductRepositoryWithTracing(db)
	movementRepository := inventoryrepo.NewGormMovementRepository(db)
	orderRepository := orderrepo.NewGormOrderRepository(db)
	customerRepository := orderrepo.NewGormCustomerRepository(db)
	categoryRepository := productrepo.NewGormReferenceRepository[productdomain.Category](db)
	brandRepository := productrepo.NewGormReferenceRepository[productdomain.Brand](db)
	warehouseRepository := productrepo.NewGormReferenceRepository[productdomain.Warehouse](db)

	// Run migrations
	if err := productRepository.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate product tables")
	}
	if err := movementRepository.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate stock movement tables")
	}
	if err := orderRepository.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate order tables")
	}
	if err := userRepository.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate user tables")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Redis is optional: without it the product cache and the storefront
	// rate limiter degrade to passthrough.
	redisClient := connectRedis()

	products := productrepo.NewCachedProductRepository(productRepository, redisClient)

	// Kafka is optional as well.
	publisher := connectKafka()
	if publisher != nil {
		defer publisher.Close()
	}

	// Handlers
	userHandler := userhttp.NewUserHandler(userRepository)
	productHandler := producthttp.NewProductHandler(products, movementRepository, orderRepository)
	movementHandler := inventoryhttp.NewMovementHandler(db, movementRepository, products)
	orderHandler := orderhttp.NewOrderHandler(db, orderRepository, customerRepository, products, publisher)
	categoryHandler := producthttp.NewReferenceHandler(categoryRepository, "categories")
	brandHandler := producthttp.NewReferenceHandler(brandRepository, "brands")
	warehouseHandler := producthttp.NewReferenceHandler(warehouseRepository, "warehouses")

	// Back-office router
	router := mux.NewRouter()
	userHandler.RegisterRoutes(router)
	userHandler.RegisterHealthCheck(router, sqlDB)
	productHandler.RegisterRoutes(router, userhttp.AuthMiddleware, userhttp.AdminMiddleware)
	categoryHandler.RegisterRoutes(router, userhttp.AuthMiddleware, userhttp.AdminMiddleware)
	brandHandler.RegisterRoutes(router, userhttp.AuthMiddleware, userhttp.AdminMiddleware)
	warehouseHandler.RegisterRoutes(router, userhttp.AuthMiddleware, userhttp.AdminMiddleware)
	movementHandler.RegisterRoutes(router, userhttp.AuthMiddleware, userhttp.AdminMiddleware)
	orderHandler.RegisterRoutes(router, userhttp.AuthMiddleware, userhttp.AdminMiddleware)

	router.Handle("/metrics", promhttp.Handler())
	userhttp.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("Back-office HTTP server started")

		handler := otelhttp.NewHandler(c.Handler(router), "http.server")
		if err := http.ListenAndServe(":"+httpPort, handler); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Storefront
	shopHandler := storefront.NewShopHandler(db, products, orderRepository, customerRepository, publisher)
	shopApp := storefront.NewApp(shopHandler, redisClient)
	shopPort := getEnv("SHOP_PORT", "8081")
	go func() {
		logger.Logger.Info().Str("port", shopPort).Msg("Storefront server started")
		if err := shopApp.Listen(":" + shopPort); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start storefront server")
		}
	}()

	// Optional consumer logs order events for audit
	startConsumer()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	if err := shopApp.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Logger.Error().Err(err).Msg("Storefront shutdown failed")
	}
}

func connectRedis() *redis.Client {
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", redisAddr).
			Msg("Failed to connect to Redis - caching and rate limiting disabled")
		return nil
	}

	logger.Logger.Info().Str("redis_addr", redisAddr).Msg("Connected to Redis")
	return redisClient
}

func connectKafka() *kafka.Publisher {
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers == "" {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set - event publishing disabled")
		return nil
	}

	publisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to connect to Kafka - event publishing disabled")
		return nil
	}

	logger.Logger.Info().Str("brokers", brokers).Msg("Connected to Kafka")
	return publisher
}

func startConsumer() {
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers == "" || getEnv("KAFKA_CONSUMER_ENABLED", "false") != "true" {
		return
	}

	consumer, err := kafka.NewConsumer(
		strings.Split(brokers, ","),
		getEnv("KAFKA_CONSUMER_GROUP", "stockhouse-audit"),
		[]string{kafka.TopicOrderEvents, kafka.TopicStockAdjusted},
	)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to start Kafka consumer")
		return
	}

	consumer.RegisterHandler(kafka.EventTypeOrderCreated, func(ctx context.Context, event interface{}) error {
		logger.WithContext(ctx).Info().Interface("event", event).Msg("Order created")
		return nil
	})
	consumer.RegisterHandler(kafka.EventTypeOrderStatusChanged, func(ctx context.Context, event interface{}) error {
		logger.WithContext(ctx).Info().Interface("event", event).Msg("Order status changed")
		return nil
	})
	consumer.RegisterHandler(kafka.EventTypeStockAdjusted, func(ctx context.Context, event interface{}) error {
		logger.WithContext(ctx).Info().Interface("event", event).Msg("Stock adjusted")
		return nil
	})

	go func() {
		if err := consumer.Start(context.Background()); err != nil {
			logger.Logger.Error().Err(err).Msg("Kafka consumer stopped")
		}
	}()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
