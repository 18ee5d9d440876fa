package command

import (
	"fmt"

	"github.com/minhtv/stockhouse/internal/order/domain"
)

// DeleteCustomerCommand represents the command to delete a customer
type DeleteCustomerCommand struct {
	ID uint
}

// DeleteCustomerHandler deletes a customer, refusing while orders still
// reference them.
type DeleteCustomerHandler struct {
	customers domain.CustomerRepository
	orders    domain.OrderRepository
}

// NewDeleteCustomerHandler creates a new delete customer handler
func NewDeleteCustomerHandler(customers domain.CustomerRepository, orders domain.OrderRepository) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{customers: customers, orders: orders}
}

// Handle executes the delete customer command
func (h *DeleteCustomerHandler) Handle(cmd DeleteCustomerCommand) error {
	if _, err := h.customers.FindByID(cmd.ID); err != nil {
		return err
	}

	count, err := h.orders.CountByCustomer(cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to check customer orders: %w", err)
	}
	if count > 0 {
		return domain.ErrCustomerInUse
	}

	return h.customers.Delete(cmd.ID)
}
