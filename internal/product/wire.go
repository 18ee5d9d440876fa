//go:build wireinject
// +build wireinject

package product

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/product/delivery/http"
	"github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/internal/product/repository"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// ProvideCategoryRepository provides the category repository
func ProvideCategoryRepository(db *gorm.DB) domain.ReferenceRepository[domain.Category] {
	return repository.NewGormReferenceRepository[domain.Category](db)
}

// ProvideBrandRepository provides the brand repository
func ProvideBrandRepository(db *gorm.DB) domain.ReferenceRepository[domain.Brand] {
	return repository.NewGormReferenceRepository[domain.Brand](db)
}

// ProvideWarehouseRepository provides the warehouse repository
func ProvideWarehouseRepository(db *gorm.DB) domain.ReferenceRepository[domain.Warehouse] {
	return repository.NewGormReferenceRepository[domain.Warehouse](db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideCategoryRepository,
	ProvideBrandRepository,
	ProvideWarehouseRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewProductHandler,
	)
	return nil, nil
}
