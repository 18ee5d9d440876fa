package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/pkg/logger"
)

const cacheTTL = 5 * time.Minute

// CachedProductRepository decorates a ProductRepository with a Redis cache
// over the read paths. Every write path drops the affected keys; balance
// adjustments count as writes. With a nil client it degrades to passthrough.
type CachedProductRepository struct {
	inner domain.ProductRepository
	redis *redis.Client
}

func NewCachedProductRepository(inner domain.ProductRepository, redisClient *redis.Client) *CachedProductRepository {
	return &CachedProductRepository{inner: inner, redis: redisClient}
}

// WithTx bypasses the cache: reads inside a transaction must see the
// transaction's own writes.
func (r *CachedProductRepository) WithTx(tx *gorm.DB) domain.ProductRepository {
	return r.inner.WithTx(tx)
}

func detailKey(id uint) string { return fmt.Sprintf("product:detail:%d", id) }

func listKey(limit, offset int) string {
	return fmt.Sprintf("product:list:%d:%d", limit, offset)
}

func (r *CachedProductRepository) FindByID(id uint) (*domain.Product, error) {
	return r.FindByIDWithContext(context.Background(), id)
}

// FindByIDWithContext reads through the cache on the caller's context, so a
// miss that falls to a tracing inner repository joins the caller's trace.
func (r *CachedProductRepository) FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	if r.redis != nil {
		if raw, err := r.redis.Get(ctx, detailKey(id)).Bytes(); err == nil {
			var product domain.Product
			if json.Unmarshal(raw, &product) == nil {
				return &product, nil
			}
		}
	}

	product, err := r.innerFindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(detailKey(id), product)
	return product, nil
}

func (r *CachedProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	return r.FindAllWithContext(context.Background(), limit, offset)
}

// FindAllWithContext is the context-carrying variant of FindAll.
func (r *CachedProductRepository) FindAllWithContext(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	if r.redis != nil {
		if raw, err := r.redis.Get(ctx, listKey(limit, offset)).Bytes(); err == nil {
			var products []domain.Product
			if json.Unmarshal(raw, &products) == nil {
				return products, nil
			}
		}
	}

	products, err := r.innerFindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	r.store(listKey(limit, offset), products)
	return products, nil
}

func (r *CachedProductRepository) innerFindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if reader, ok := r.inner.(domain.ContextReader); ok {
		return reader.FindByIDWithContext(ctx, id)
	}
	return r.inner.FindByID(id)
}

func (r *CachedProductRepository) innerFindAll(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	if reader, ok := r.inner.(domain.ContextReader); ok {
		return reader.FindAllWithContext(ctx, limit, offset)
	}
	return r.inner.FindAll(limit, offset)
}

func (r *CachedProductRepository) Create(product *domain.Product) error {
	if err := r.inner.Create(product); err != nil {
		return err
	}
	r.invalidate(product.ID)
	return nil
}

func (r *CachedProductRepository) Update(product *domain.Product) error {
	if err := r.inner.Update(product); err != nil {
		return err
	}
	r.invalidate(product.ID)
	return nil
}

func (r *CachedProductRepository) Delete(id uint) error {
	if err := r.inner.Delete(id); err != nil {
		return err
	}
	r.invalidate(id)
	return nil
}

func (r *CachedProductRepository) AdjustBalance(tx *gorm.DB, productID uint, quantity int, direction domain.StockDirection) error {
	if err := r.inner.AdjustBalance(tx, productID, quantity, direction); err != nil {
		return err
	}
	r.invalidate(productID)
	return nil
}

func (r *CachedProductRepository) AdjustBalanceWithContext(ctx context.Context, tx *gorm.DB, productID uint, quantity int, direction domain.StockDirection) error {
	if err := domain.AdjustBalance(ctx, r.inner, tx, productID, quantity, direction); err != nil {
		return err
	}
	r.invalidate(productID)
	return nil
}

func (r *CachedProductRepository) FindByCode(code string) (*domain.Product, error) {
	return r.inner.FindByCode(code)
}

func (r *CachedProductRepository) Count() (int64, error) {
	return r.inner.Count()
}

func (r *CachedProductRepository) store(key string, value interface{}) {
	if r.redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.redis.Set(context.Background(), key, raw, cacheTTL).Err(); err != nil {
		logger.Logger.Debug().Err(err).Str("key", key).Msg("Cache store failed")
	}
}

func (r *CachedProductRepository) invalidate(id uint) {
	if r.redis == nil {
		return
	}
	ctx := context.Background()
	if err := r.redis.Del(ctx, detailKey(id)).Err(); err != nil {
		logger.Logger.Debug().Err(err).Uint("product_id", id).Msg("Cache invalidation failed")
	}
	// List pages are keyed by pagination window; drop them all.
	iter := r.redis.Scan(ctx, 0, "product:list:*", 0).Iterator()
	for iter.Next(ctx) {
		r.redis.Del(ctx, iter.Val())
	}
}
