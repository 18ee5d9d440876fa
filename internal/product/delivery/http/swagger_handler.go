package http

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product; opening balance seeds the current stock balance
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{code=string,name=string,description=string,unit=string,price=number,category_id=int,brand_id=int,warehouse_id=int,opening_balance=int} true "Product data"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Router /api/products [post]
func (h *ProductHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} Response
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get a product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Update product attributes; stock balances cannot be edited here
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/products/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product (admin)
// @Description Refused with 409 while stock movements or order lines still reference the product
// @Tags Products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/products/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// GetStats godoc
// @Summary Catalog statistics
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response
// @Router /api/products/stats [get]
func (h *ProductHandler) GetStatsDoc() {}
