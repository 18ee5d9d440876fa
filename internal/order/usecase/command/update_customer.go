package command

import (
	"fmt"

	"github.com/minhtv/stockhouse/internal/order/domain"
)

// UpdateCustomerCommand represents the command to update a customer
type UpdateCustomerCommand struct {
	ID    uint
	Name  *string
	Phone *string
}

// UpdateCustomerHandler handles customer update
type UpdateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo}
}

// Handle executes the update customer command
func (h *UpdateCustomerHandler) Handle(cmd UpdateCustomerCommand) (*domain.Customer, error) {
	customer, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, fmt.Errorf("customer name is required")
		}
		customer.Name = *cmd.Name
	}
	if cmd.Phone != nil {
		customer.Phone = *cmd.Phone
	}

	if err := h.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}
