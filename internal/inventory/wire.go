//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/inventory/delivery/http"
	"github.com/minhtv/stockhouse/internal/inventory/domain"
	"github.com/minhtv/stockhouse/internal/inventory/repository"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	productrepo "github.com/minhtv/stockhouse/internal/product/repository"
	"github.com/minhtv/stockhouse/pkg/database"
)

// ProvideMovementRepository provides the stock movement repository
func ProvideMovementRepository(db *gorm.DB) domain.MovementRepository {
	return repository.NewGormMovementRepository(db)
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
	ProvideMovementRepository,
	ProvideProductRepository,
	ProvideTxRunner,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.MovementHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewMovementHandler,
	)
	return nil, nil
}
