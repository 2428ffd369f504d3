package service

import (
	"context"
	"fmt"
	"io"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// ExpenseExportContentType is the MIME type of the exported workbook
const ExpenseExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const expenseSheet = "Laporan"

var expenseHeaders = []string{"Tanggal", "Kategori", "Jumlah", "Keterangan", "Kasir", "Status", "Disetujui Oleh", "Bukti"}

// ExportExpenses writes every laporan matching filter to w as an .xlsx
// workbook with a total row
func (s *ExpenseService) ExportExpenses(ctx context.Context, filter entity.ExpenseFilter, w io.Writer) error {
	expenses, err := s.AllExpenses(ctx, filter)
	if err != nil {
		return err
	}
	return WriteExpenseWorkbook(expenses, w)
}

// WriteExpenseWorkbook renders expenses into a single sheet
func WriteExpenseWorkbook(expenses []entity.StoreExpense, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", expenseSheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	if err := writeExpenseSheet(f, expenseSheet, expenses); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

// writeExpenseSheet fills sheet with the header, one row per expense and a
// total row
func writeExpenseSheet(f *excelize.File, sheet string, expenses []entity.StoreExpense) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}
	for i, h := range expenseHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("export: header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("export: style %s: %w", cell, err)
		}
	}

	row := 2
	var total int64
	for _, e := range expenses {
		values := []interface{}{
			e.Date,
			string(e.Category),
			e.Amount,
			e.Description,
			e.CashierName,
			string(e.Status),
			deref(e.ApprovedBy),
			deref(e.ReceiptURL),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return fmt.Errorf("export: row %d: %w", row, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("export: cell %s: %w", cell, err)
			}
		}
		total += e.Amount
		row++
	}

	if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "TOTAL"); err != nil {
		return fmt.Errorf("export: total label: %w", err)
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), total); err != nil {
		return fmt.Errorf("export: total: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(expenseHeaders))
	if err != nil {
		return fmt.Errorf("export: header range: %w", err)
	}
	if err := f.AutoFilter(sheet, "A1:"+lastCol+"1", []excelize.AutoFilterOptions{}); err != nil {
		return fmt.Errorf("export: auto filter: %w", err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, Split: true, YSplit: 1}); err != nil {
		return fmt.Errorf("export: freeze header: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
