package query

import (
	"context"

	"github.com/minhtv/stockhouse/internal/product/domain"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Limit  int
	Offset int
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	q = q.clamped()
	return h.repo.FindAll(q.Limit, q.Offset)
}

// HandleContext is Handle joined to an incoming trace when the repository
// supports it.
func (h *ListProductsHandler) HandleContext(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	q = q.clamped()
	if reader, ok := h.repo.(domain.ContextReader); ok {
		return reader.FindAllWithContext(ctx, q.Limit, q.Offset)
	}
	return h.repo.FindAll(q.Limit, q.Offset)
}

func (q ListProductsQuery) clamped() ListProductsQuery {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}
