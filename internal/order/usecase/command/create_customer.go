package command

import (
	"fmt"

	"github.com/minhtv/stockhouse/internal/order/domain"
	"github.com/minhtv/stockhouse/pkg/codegen"
)

const customerCodePrefix = "KH"

// CreateCustomerCommand represents the command to create a customer
type CreateCustomerCommand struct {
	Name  string
	Phone string
}

// CreateCustomerHandler handles customer creation
type CreateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewCreateCustomerHandler creates a new create customer handler
func NewCreateCustomerHandler(repo domain.CustomerRepository) *CreateCustomerHandler {
	return &CreateCustomerHandler{repo: repo}
}

// Handle executes the create customer command
func (h *CreateCustomerHandler) Handle(cmd CreateCustomerCommand) (*domain.Customer, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	count, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	code := codegen.Sequential(customerCodePrefix, count)
	if _, err := h.repo.FindByCode(code); err == nil {
		code = codegen.Fallback(customerCodePrefix)
	}

	customer := &domain.Customer{
		Code:  code,
		Name:  cmd.Name,
		Phone: cmd.Phone,
	}

	if err := h.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}
