package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/minhtv/stockhouse/internal/order/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/pkg/codegen"
)

// setupTestDB starts a throwaway postgres container. Guarded by
// INTEGRATION_TESTS because it needs a docker daemon.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("INTEGRATION_TESTS") != "true" {
		t.Skip("set INTEGRATION_TESTS=true to run container-backed tests")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable", host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "connect to postgres")

	require.NoError(t, db.AutoMigrate(
		&productdomain.Product{},
		&domain.Customer{},
		&domain.Order{},
		&domain.OrderItem{},
	))
	return db
}

// Deleting the newest order must free its code: Count and FindByCode drive
// sequential code generation, so a row that vanished from both but still
// occupied the unique index would make every later create collide.
func TestDeleteFreesOrderCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	customers := NewGormCustomerRepository(db)

	customer := &domain.Customer{Code: "KH000001", Name: "Alice"}
	require.NoError(t, customers.Create(customer))

	product := &productdomain.Product{Code: "SP000001", Name: "Coffee", CurrentBalance: 10}
	require.NoError(t, db.Create(product).Error)

	first := &domain.Order{Code: "DH000001", CustomerID: customer.ID, Status: domain.StatusPending}
	require.NoError(t, repo.Create(first))
	second := &domain.Order{
		Code:       "DH000002",
		CustomerID: customer.ID,
		Status:     domain.StatusPending,
		Items:      []domain.OrderItem{{ProductID: product.ID, Quantity: 2, Price: 5, Subtotal: 10}},
	}
	require.NoError(t, repo.Create(second))

	require.NoError(t, repo.Delete(second))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repo.FindByCode("DH000002")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	// The sequential generator now re-issues DH000002; the insert must go
	// through because the deleted row is really gone.
	code := codegen.Sequential("DH", count)
	require.Equal(t, "DH000002", code)
	replacement := &domain.Order{Code: code, CustomerID: customer.ID, Status: domain.StatusPending}
	require.NoError(t, repo.Create(replacement))

	// The line items went with the order, tombstones included.
	var itemCount int64
	require.NoError(t, db.Unscoped().Model(&domain.OrderItem{}).Where("order_id = ?", second.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestDeleteFreesCustomerCode(t *testing.T) {
	db := setupTestDB(t)
	customers := NewGormCustomerRepository(db)

	customer := &domain.Customer{Code: "KH000001", Name: "Bob"}
	require.NoError(t, customers.Create(customer))
	require.NoError(t, customers.Delete(customer.ID))

	count, err := customers.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	again := &domain.Customer{Code: "KH000001", Name: "Bob again"}
	require.NoError(t, customers.Create(again))
}
