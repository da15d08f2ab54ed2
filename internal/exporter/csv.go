// Package exporter writes the cleaned table to disk. The CSV file is the
// contractual artifact; an Excel copy can be produced alongside it for
// spreadsheet users.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"studentperf/internal/config"
	"studentperf/internal/dataset"
)

// Writer persists cleaned tables.
type Writer struct {
	logger    *slog.Logger
	excelCopy bool
}

// NewWriter creates a writer honoring the export configuration.
func NewWriter(logger *slog.Logger, cfg config.ExportConfig) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger, excelCopy: cfg.ExcelCopy}
}

// Save writes the table to the given CSV path, plus the optional Excel copy.
// A CSV failure is fatal; the Excel copy is advisory and only logged.
func (w *Writer) Save(path string, t dataset.Table) error {
	if err := w.SaveCSV(path, t); err != nil {
		return err
	}
	if w.excelCopy {
		xlsxPath := strings.TrimSuffix(path, ".csv") + ".xlsx"
		if err := w.SaveExcel(xlsxPath, t); err != nil {
			w.logger.Warn("failed to write Excel copy",
				slog.String("path", xlsxPath),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// SaveCSV writes header plus one line per row, no index column. The file
// handle is held only for the duration of this call.
func (w *Writer) SaveCSV(path string, t dataset.Table) error {
	rows, _ := t.Shape()
	w.logger.Info("writing cleaned CSV",
		slog.String("path", path),
		slog.Int("rows", rows))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(t.Columns); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range t.Rows {
		record := make([]string, len(row))
		for j, cell := range row {
			record[j] = cell.String()
		}
		if err := cw.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
