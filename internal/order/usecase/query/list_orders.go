package query

import (
	"github.com/minhtv/stockhouse/internal/order/domain"
)

// ListOrdersQuery represents a query to list orders
type ListOrdersQuery struct {
	Limit  int
	Offset int
}

// ListOrdersResult holds one page of orders plus the total count.
type ListOrdersResult struct {
	Orders []domain.Order `json:"orders"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) (*ListOrdersResult, error) {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	orders, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	total, err := h.repo.Count()
	if err != nil {
		return nil, err
	}

	return &ListOrdersResult{
		Orders: orders,
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	}, nil
}
