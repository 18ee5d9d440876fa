package query

import (
	"fmt"

	"github.com/minhtv/stockhouse/internal/inventory/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
)

// ReportRow summarizes one product's stock position: the opening balance,
// the manual movement totals, the live balance, and the ending balance the
// ledger alone would predict. Live and ending differ by order activity.
type ReportRow struct {
	ProductID      uint    `json:"product_id"`
	ProductCode    string  `json:"product_code"`
	ProductName    string  `json:"product_name"`
	Unit           string  `json:"unit"`
	OpeningBalance int     `json:"opening_balance"`
	TotalIn        int64   `json:"total_in"`
	TotalOut       int64   `json:"total_out"`
	CurrentBalance int     `json:"current_balance"`
	EndingBalance  int64   `json:"ending_balance"`
}

// GetReportQuery limits the report to one product when ProductID is set.
type GetReportQuery struct {
	ProductID uint
}

// GetReportHandler builds the inventory report
type GetReportHandler struct {
	movements domain.MovementRepository
	products  productdomain.ProductRepository
}

// NewGetReportHandler creates a new report handler
func NewGetReportHandler(movements domain.MovementRepository, products productdomain.ProductRepository) *GetReportHandler {
	return &GetReportHandler{movements: movements, products: products}
}

// Handle executes the report query
func (h *GetReportHandler) Handle(q GetReportQuery) ([]ReportRow, error) {
	var products []productdomain.Product
	if q.ProductID != 0 {
		product, err := h.products.FindByID(q.ProductID)
		if err != nil {
			return nil, err
		}
		products = []productdomain.Product{*product}
	} else {
		const page = 200
		for offset := 0; ; offset += page {
			batch, err := h.products.FindAll(page, offset)
			if err != nil {
				return nil, fmt.Errorf("failed to list products: %w", err)
			}
			products = append(products, batch...)
			if len(batch) < page {
				break
			}
		}
	}

	rows := make([]ReportRow, 0, len(products))
	for _, p := range products {
		totalIn, err := h.movements.SumByProduct(p.ID, domain.DirectionIn)
		if err != nil {
			return nil, fmt.Errorf("failed to sum imports: %w", err)
		}
		totalOut, err := h.movements.SumByProduct(p.ID, domain.DirectionOut)
		if err != nil {
			return nil, fmt.Errorf("failed to sum exports: %w", err)
		}

		rows = append(rows, ReportRow{
			ProductID:      p.ID,
			ProductCode:    p.Code,
			ProductName:    p.Name,
			Unit:           p.Unit,
			OpeningBalance: p.OpeningBalance,
			TotalIn:        totalIn,
			TotalOut:       totalOut,
			CurrentBalance: p.CurrentBalance,
			EndingBalance:  int64(p.OpeningBalance) + totalIn - totalOut,
		})
	}

	return rows, nil
}
