//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/order/delivery/http"
	"github.com/minhtv/stockhouse/internal/order/domain"
	"github.com/minhtv/stockhouse/internal/order/repository"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	productrepo "github.com/minhtv/stockhouse/internal/product/repository"
	"github.com/minhtv/stockhouse/pkg/database"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// ProvideCustomerRepository provides the customer repository
func ProvideCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return repository.NewGormCustomerRepository(db)
}

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) productdomain.ProductRepository {
	return productrepo.NewGormProductRepository(db)
}

// ProvideTxRunner provides the transaction runner
func ProvideTxRunner(db *gorm.DB) database.TxRunner {
	return db
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideCustomerRepository,
	ProvideProductRepository,
	ProvideTxRunner,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewOrderHandler,
	)
	return nil, nil
}
