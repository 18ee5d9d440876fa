package http

// CreateOrder godoc
// @Summary Create an order
// @Description Create an order; every item's stock is deducted atomically with the order insert
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{customer_id=int,items=array,notes=string} true "Order data"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrderDoc() {}

// ListOrders godoc
// @Summary List orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} Response
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// UpdateOrder godoc
// @Summary Update order status or notes
// @Description Status changes may restock or re-deduct every item depending on the old and new status
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object{status=string,notes=string} true "Update data"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /api/orders/{id} [put]
func (h *OrderHandler) UpdateOrderDoc() {}

// DeleteOrder godoc
// @Summary Delete an order (admin)
// @Description Deleting an order that still holds deducted stock restocks every item first
// @Tags Orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrderDoc() {}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,phone=string} true "Customer data"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Router /api/customers [post]
func (h *OrderHandler) CreateCustomerDoc() {}

// DeleteCustomer godoc
// @Summary Delete a customer (admin)
// @Description Refused with 409 while orders still reference the customer
// @Tags Customers
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/customers/{id} [delete]
func (h *OrderHandler) DeleteCustomerDoc() {}
