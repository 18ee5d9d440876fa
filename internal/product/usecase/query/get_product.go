package query

import (
	"context"
	"fmt"

	"github.com/minhtv/stockhouse/internal/product/domain"
)

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}
	return h.repo.FindByID(q.ID)
}

// HandleContext is Handle joined to an incoming trace when the repository
// supports it.
func (h *GetProductHandler) HandleContext(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}
	if reader, ok := h.repo.(domain.ContextReader); ok {
		return reader.FindByIDWithContext(ctx, q.ID)
	}
	return h.repo.FindByID(q.ID)
}
