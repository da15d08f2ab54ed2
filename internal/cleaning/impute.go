package cleaning

import (
	"errors"
	"fmt"

	"studentperf/internal/dataset"
	"studentperf/internal/stats"
)

// ErrDegenerateColumn means a column has no present values to impute from.
// This is an input precondition violation and aborts the run.
var ErrDegenerateColumn = errors.New("column has no present values to impute from")

// ImputeStage fills absent values: numeric columns with the column median,
// categorical columns with the column mode (ties break toward the value
// encountered first). Each fill statistic is computed once over the present
// values only, before any filling in that column.
type ImputeStage struct{}

func (ImputeStage) Name() string { return "impute" }

func (s ImputeStage) Apply(t dataset.Table, obs Observer) (dataset.Table, error) {
	out := t.Clone()

	for _, col := range dataset.NumericColumns {
		if err := s.fillMedian(&out, col, obs); err != nil {
			return dataset.Table{}, err
		}
	}
	for _, col := range dataset.ModeColumns {
		if err := s.fillMode(&out, col, obs); err != nil {
			return dataset.Table{}, err
		}
	}
	return out, nil
}

func (s ImputeStage) fillMedian(t *dataset.Table, col string, obs Observer) error {
	idx, ok := t.ColumnIndex(col)
	if !ok {
		return fmt.Errorf("column %q not found", col)
	}

	var present []float64
	for _, row := range t.Rows {
		if row[idx].Kind() == dataset.KindNumber {
			present = append(present, row[idx].Number())
		}
	}
	if len(present) == 0 && len(t.Rows) > 0 {
		return fmt.Errorf("%s: %w", col, ErrDegenerateColumn)
	}

	median := stats.Median(present)
	filled := 0
	for _, row := range t.Rows {
		if row[idx].Kind() != dataset.KindNumber {
			row[idx] = dataset.NumberCell(median)
			filled++
		}
	}
	obs.CellsChanged(s.Name(), col, filled)
	return nil
}

func (s ImputeStage) fillMode(t *dataset.Table, col string, obs Observer) error {
	idx, ok := t.ColumnIndex(col)
	if !ok {
		return fmt.Errorf("column %q not found", col)
	}

	var present []string
	for _, row := range t.Rows {
		if row[idx].Kind() == dataset.KindText {
			present = append(present, row[idx].Text())
		}
	}
	if len(present) == 0 && len(t.Rows) > 0 {
		return fmt.Errorf("%s: %w", col, ErrDegenerateColumn)
	}

	mode, _ := stats.Mode(present)
	filled := 0
	for _, row := range t.Rows {
		if row[idx].IsAbsent() {
			row[idx] = dataset.TextCell(mode)
			filled++
		}
	}
	obs.CellsChanged(s.Name(), col, filled)
	return nil
}
