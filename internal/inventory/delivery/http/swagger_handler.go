package http

// CreateMovement godoc
// @Summary Record a stock movement
// @Description Record an import (in) or export (out); the balance change commits with the record
// @Tags Movements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{direction=string,product_id=int,quantity=int,unit_price=number,note=string} true "Movement data"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /api/movements [post]
func (h *MovementHandler) CreateMovementDoc() {}

// ListMovements godoc
// @Summary List stock movements
// @Tags Movements
// @Security BearerAuth
// @Produce json
// @Param direction query string false "Filter by direction (in/out)"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} Response
// @Router /api/movements [get]
func (h *MovementHandler) ListMovementsDoc() {}

// UpdateMovement godoc
// @Summary Edit a stock movement
// @Description Reverses the original balance effect and applies the new one atomically; direction cannot change
// @Tags Movements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Movement ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /api/movements/{id} [put]
func (h *MovementHandler) UpdateMovementDoc() {}

// DeleteMovement godoc
// @Summary Delete a stock movement (admin)
// @Description Reverses the movement's balance effect; refused when the reversal would overdraw stock
// @Tags Movements
// @Security BearerAuth
// @Param id path int true "Movement ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/movements/{id} [delete]
func (h *MovementHandler) DeleteMovementDoc() {}

// GetReport godoc
// @Summary Inventory report
// @Description Per-product stock position: opening balance, ledger totals, live and ending balances
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param product_id query int false "Limit to one product"
// @Success 200 {object} Response
// @Router /api/inventory/report [get]
func (h *MovementHandler) GetReportDoc() {}

// ExportReport godoc
// @Summary Download inventory report as XLSX
// @Tags Inventory
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param product_id query int false "Limit to one product"
// @Success 200 {file} binary
// @Router /api/inventory/report/export [get]
func (h *MovementHandler) ExportReportDoc() {}
