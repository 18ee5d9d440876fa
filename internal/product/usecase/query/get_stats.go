package query

import (
	"fmt"

	"github.com/minhtv/stockhouse/internal/product/domain"
)

// ProductStats summarizes the catalog for the back-office dashboard.
type ProductStats struct {
	TotalProducts int64 `json:"total_products"`
	OutOfStock    int   `json:"out_of_stock"`
	TotalUnits    int   `json:"total_units"`
}

// GetStatsHandler handles catalog statistics query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle() (*ProductStats, error) {
	total, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	stats := &ProductStats{TotalProducts: total}

	// Walk the catalog in pages; the catalog is back-office sized.
	const page = 200
	for offset := 0; ; offset += page {
		products, err := h.repo.FindAll(page, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
		for _, p := range products {
			stats.TotalUnits += p.CurrentBalance
			if p.CurrentBalance == 0 {
				stats.OutOfStock++
			}
		}
		if len(products) < page {
			break
		}
	}

	return stats, nil
}
