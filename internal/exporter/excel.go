package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"studentperf/internal/dataset"
)

const sheetName = "Cleaned"

// SaveExcel writes the table as a single-sheet .xlsx workbook. Numbers are
// written as numbers so spreadsheet formulas work on them directly.
func (w *Writer) SaveExcel(path string, t dataset.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for j, col := range t.Columns {
		cellRef, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cellRef, col); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, row := range t.Rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell for row %d: %w", i, err)
			}
			var value any
			if cell.Kind() == dataset.KindNumber {
				value = cell.Number()
			} else {
				value = cell.String()
			}
			if err := f.SetCellValue(sheetName, cellRef, value); err != nil {
				return fmt.Errorf("failed to write cell for row %d: %w", i, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	rows, _ := t.Shape()
	w.logger.Info("wrote Excel copy",
		slog.String("path", path),
		slog.Int("rows", rows))
	return nil
}
