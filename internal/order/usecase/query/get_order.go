package query

import (
	"fmt"

	"github.com/minhtv/stockhouse/internal/order/domain"
)

// GetOrderQuery fetches one order by ID, or by code when Code is set.
type GetOrderQuery struct {
	ID   uint
	Code string
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	if q.Code != "" {
		return h.repo.FindByCode(q.Code)
	}
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid order id")
	}
	return h.repo.FindByID(q.ID)
}
