package command

import (
	"fmt"

	"github.com/minhtv/stockhouse/internal/product/domain"
)

// UpdateProductCommand represents the command to update a product. Nil
// fields are left unchanged. Opening and current balance are deliberately
// absent: the opening balance is immutable and the current balance belongs
// to AdjustBalance alone.
type UpdateProductCommand struct {
	ID          uint
	Code        *string
	Name        *string
	Description *string
	Unit        *string
	Price       *float64
	Images      *string
	CategoryID  *uint
	BrandID     *uint
	WarehouseID *uint
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Code != nil && *cmd.Code != product.Code {
		if _, err := h.repo.FindByCode(*cmd.Code); err == nil {
			return nil, domain.ErrCodeTaken
		}
		product.Code = *cmd.Code
	}
	if cmd.Name != nil {
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.Unit != nil {
		product.Unit = *cmd.Unit
	}
	if cmd.Price != nil {
		if *cmd.Price < 0 {
			return nil, fmt.Errorf("price cannot be negative")
		}
		product.Price = cmd.Price
	}
	if cmd.Images != nil {
		product.Images = *cmd.Images
	}
	if cmd.CategoryID != nil {
		product.CategoryID = cmd.CategoryID
	}
	if cmd.BrandID != nil {
		product.BrandID = cmd.BrandID
	}
	if cmd.WarehouseID != nil {
		product.WarehouseID = cmd.WarehouseID
	}

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
