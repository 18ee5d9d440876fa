package query

import (
	"github.com/minhtv/stockhouse/internal/order/domain"
)

// GetCustomerQuery represents a query to get a customer
type GetCustomerQuery struct {
	ID uint
}

// GetCustomerHandler handles get customer query
type GetCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(repo domain.CustomerRepository) *GetCustomerHandler {
	return &GetCustomerHandler{repo: repo}
}

// Handle executes the get customer query
func (h *GetCustomerHandler) Handle(q GetCustomerQuery) (*domain.Customer, error) {
	return h.repo.FindByID(q.ID)
}
