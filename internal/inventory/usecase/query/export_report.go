package query

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportReportHandler renders the inventory report as an XLSX workbook for
// the back-office download.
type ExportReportHandler struct {
	report *GetReportHandler
}

// NewExportReportHandler creates a new export report handler
func NewExportReportHandler(report *GetReportHandler) *ExportReportHandler {
	return &ExportReportHandler{report: report}
}

// Handle builds the workbook and returns its bytes.
func (h *ExportReportHandler) Handle(q GetReportQuery) ([]byte, error) {
	rows, err := h.report.Handle(q)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Code", "Name", "Unit", "Opening", "Total In", "Total Out", "Current", "Ending"}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for i, row := range rows {
		values := []interface{}{
			row.ProductCode, row.ProductName, row.Unit,
			row.OpeningBalance, row.TotalIn, row.TotalOut,
			row.CurrentBalance, row.EndingBalance,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	footer, _ := excelize.CoordinatesToCellName(1, len(rows)+3)
	f.SetCellValue(sheet, footer, "Generated "+time.Now().Format("2006-01-02 15:04"))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
