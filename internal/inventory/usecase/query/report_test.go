package query

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/minhtv/stockhouse/internal/inventory/domain"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
)

// stubProducts embeds the interface so only the methods the report uses
// need real bodies.
type stubProducts struct {
	productdomain.ProductRepository
	items []productdomain.Product
}

func (s stubProducts) FindAll(limit, offset int) ([]productdomain.Product, error) {
	if offset >= len(s.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.items) {
		end = len(s.items)
	}
	return s.items[offset:end], nil
}

func (s stubProducts) FindByID(id uint) (*productdomain.Product, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, productdomain.ErrProductNotFound
}

type stubMovements struct {
	domain.MovementRepository
	in  map[uint]int64
	out map[uint]int64
}

func (s stubMovements) SumByProduct(productID uint, direction domain.MovementDirection) (int64, error) {
	if direction == domain.DirectionIn {
		return s.in[productID], nil
	}
	return s.out[productID], nil
}

func reportFixture() *GetReportHandler {
	products := stubProducts{items: []productdomain.Product{
		{ID: 1, Code: "SP000001", Name: "Coffee", Unit: "bag", OpeningBalance: 20, CurrentBalance: 92},
		{ID: 2, Code: "SP000002", Name: "Tea", Unit: "box", OpeningBalance: 0, CurrentBalance: 150},
	}}
	movements := stubMovements{
		in:  map[uint]int64{1: 80, 2: 150},
		out: map[uint]int64{1: 5},
	}
	return NewGetReportHandler(movements, products)
}

func TestReportComputesEndingBalance(t *testing.T) {
	rows, err := reportFixture().Handle(GetReportQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	coffee := rows[0]
	assert.Equal(t, 20, coffee.OpeningBalance)
	assert.Equal(t, int64(80), coffee.TotalIn)
	assert.Equal(t, int64(5), coffee.TotalOut)
	// Ending is what the ledger predicts; current reflects orders too.
	assert.Equal(t, int64(95), coffee.EndingBalance)
	assert.Equal(t, 92, coffee.CurrentBalance)

	tea := rows[1]
	assert.Equal(t, int64(150), tea.EndingBalance)
}

func TestReportSingleProduct(t *testing.T) {
	rows, err := reportFixture().Handle(GetReportQuery{ProductID: 2})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SP000002", rows[0].ProductCode)
}

func TestReportUnknownProduct(t *testing.T) {
	_, err := reportFixture().Handle(GetReportQuery{ProductID: 99})
	assert.ErrorIs(t, err, productdomain.ErrProductNotFound)
}

func TestExportReportProducesWorkbook(t *testing.T) {
	export := NewExportReportHandler(reportFixture())

	data, err := export.Handle(GetReportQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Inventory", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", name)

	ending, err := f.GetCellValue("Inventory", "H2")
	require.NoError(t, err)
	assert.Equal(t, "95", ending)
}
