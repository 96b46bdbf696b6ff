package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"expensey/internal/domain"
)

const sheetName = "Expenses"

// columns defines the header row of the export workbook.
var columns = []string{
	"Date",
	"Amount",
	"Currency",
	"Merchant",
	"Category",
	"Note",
}

// BuildWorkbook renders a batch of transactions as an XLSX workbook with a
// single sheet. The caller owns the returned file and must Close it.
func BuildWorkbook(txs []domain.Transaction) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("export: renaming sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
	}

	for i := range txs {
		if err := writeRow(f, i+2, &txs[i]); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, row int, tx *domain.Transaction) error {
	note := ""
	if tx.UserNote != nil {
		note = *tx.UserNote
	}
	values := []interface{}{
		tx.CreatedAt.UTC().Format("2006-01-02 15:04"),
		tx.Amount,
		tx.Currency,
		tx.Merchant,
		tx.Category,
		note,
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("export: row %d: %w", row, err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("export: row %d: %w", row, err)
		}
	}
	return nil
}
