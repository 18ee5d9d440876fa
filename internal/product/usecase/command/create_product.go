package command

import (
	"fmt"
	"strings"

	"github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/pkg/codegen"
)

const productCodePrefix = "SP"

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Code           string
	Name           string
	Description    string
	Unit           string
	Price          *float64
	Images         string
	CategoryID     *uint
	BrandID        *uint
	WarehouseID    *uint
	OpeningBalance int
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command. The current balance starts
// equal to the opening balance; nothing else ever writes it directly.
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.OpeningBalance < 0 {
		return nil, fmt.Errorf("opening balance cannot be negative")
	}
	if cmd.Price != nil && *cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	code := strings.TrimSpace(cmd.Code)
	if code == "" {
		count, err := h.repo.Count()
		if err != nil {
			return nil, fmt.Errorf("failed to count products: %w", err)
		}
		code = codegen.Sequential(productCodePrefix, count)
		if _, err := h.repo.FindByCode(code); err == nil {
			code = codegen.Fallback(productCodePrefix)
		}
	}

	if _, err := h.repo.FindByCode(code); err == nil {
		return nil, domain.ErrCodeTaken
	}

	product := &domain.Product{
		Code:           code,
		Name:           cmd.Name,
		Description:    cmd.Description,
		Unit:           cmd.Unit,
		Price:          cmd.Price,
		Images:         cmd.Images,
		CategoryID:     cmd.CategoryID,
		BrandID:        cmd.BrandID,
		WarehouseID:    cmd.WarehouseID,
		OpeningBalance: cmd.OpeningBalance,
		CurrentBalance: cmd.OpeningBalance,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
