// Package profile computes descriptive diagnostics over a record table: shape,
// missing-value counts, duplicate counts, categorical value counts, suspected
// non-numeric score cells, and describe-style numeric summaries.
//
// The profile is advisory. It is emitted before and after cleaning so a human
// can see what the pipeline found and fixed, and nothing downstream may depend
// on it.
package profile

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"studentperf/internal/dataset"
	"studentperf/internal/stats"
)

// sentinel spellings recognized when profiling raw text cells. Mirrors the
// pipeline's normalization set so pre-clean missing counts line up with what
// the pipeline will actually convert.
var rawSentinels = map[string]struct{}{
	"-": {}, "N/A": {}, "NA": {}, "null": {}, "missing": {}, "None": {}, "": {},
}

// NumericSummary is a describe-style summary of one numeric column.
type NumericSummary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Median float64
	Max    float64
}

// ValueCount is one categorical value and its frequency.
type ValueCount struct {
	Value string
	Count int
}

// ColumnProfile aggregates per-column diagnostics.
type ColumnProfile struct {
	Column     string
	Missing    int
	NonNumeric int // text cells in a numeric column that fail to parse
	Numeric    *NumericSummary
	TopValues  []ValueCount
}

// Report is a full diagnostic snapshot of a table.
type Report struct {
	RowCount      int
	ColumnCount   int
	DuplicateRows int
	Columns       []ColumnProfile
}

// maxTopValues bounds the categorical frequency listing.
const maxTopValues = 5

// Describe profiles the given table.
func Describe(t dataset.Table) Report {
	rows, cols := t.Shape()
	r := Report{RowCount: rows, ColumnCount: cols}

	seen := make(map[string]struct{}, rows)
	for _, row := range t.Rows {
		key := row.Key()
		if _, dup := seen[key]; dup {
			r.DuplicateRows++
		} else {
			seen[key] = struct{}{}
		}
	}

	numeric := make(map[string]bool, len(dataset.NumericColumns))
	for _, c := range dataset.NumericColumns {
		numeric[c] = true
	}

	for i, col := range t.Columns {
		cp := ColumnProfile{Column: col}

		var values []float64
		counts := make(map[string]int)
		var order []string

		for _, row := range t.Rows {
			cell := row[i]
			switch cell.Kind() {
			case dataset.KindAbsent:
				cp.Missing++
			case dataset.KindNumber:
				values = append(values, cell.Number())
			case dataset.KindText:
				text := cell.Text()
				if _, missing := rawSentinels[text]; missing {
					cp.Missing++
					continue
				}
				if numeric[col] {
					v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
					if err != nil {
						cp.NonNumeric++
					} else {
						values = append(values, v)
					}
					continue
				}
				if counts[text] == 0 {
					order = append(order, text)
				}
				counts[text]++
			}
		}

		if numeric[col] && len(values) > 0 {
			min, max := stats.MinMax(values)
			cp.Numeric = &NumericSummary{
				Count:  len(values),
				Mean:   stats.Mean(values),
				Std:    stats.Std(values),
				Min:    min,
				Median: stats.Median(values),
				Max:    max,
			}
		}
		cp.TopValues = topValues(order, counts)
		r.Columns = append(r.Columns, cp)
	}
	return r
}

// topValues selects the most frequent values, ties broken by first appearance.
func topValues(order []string, counts map[string]int) []ValueCount {
	if len(order) == 0 {
		return nil
	}
	out := make([]ValueCount, 0, len(order))
	for _, v := range order {
		out = append(out, ValueCount{Value: v, Count: counts[v]})
	}
	// Stable selection sort keeps first-appearance order among equals; the
	// listing is small enough that efficiency is irrelevant.
	for i := 0; i < len(out); i++ {
		best := i
		for j := i + 1; j < len(out); j++ {
			if out[j].Count > out[best].Count {
				best = j
			}
		}
		out[i], out[best] = out[best], out[i]
	}
	if len(out) > maxTopValues {
		out = out[:maxTopValues]
	}
	return out
}

// Log emits the report through the logger, one line per fact.
func (r Report) Log(ctx context.Context, logger *slog.Logger, label string) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "dataset shape",
		slog.String("profile", label),
		slog.Int("rows", r.RowCount),
		slog.Int("columns", r.ColumnCount),
		slog.Int("duplicate_rows", r.DuplicateRows))

	for _, cp := range r.Columns {
		attrs := []any{
			slog.String("profile", label),
			slog.String("column", cp.Column),
			slog.Int("missing", cp.Missing),
		}
		if cp.NonNumeric > 0 {
			attrs = append(attrs, slog.Int("non_numeric", cp.NonNumeric))
		}
		if cp.Numeric != nil {
			attrs = append(attrs,
				slog.Int("count", cp.Numeric.Count),
				slog.Float64("mean", cp.Numeric.Mean),
				slog.Float64("std", cp.Numeric.Std),
				slog.Float64("min", cp.Numeric.Min),
				slog.Float64("median", cp.Numeric.Median),
				slog.Float64("max", cp.Numeric.Max))
		}
		for _, vc := range cp.TopValues {
			attrs = append(attrs, slog.Int(vc.Value, vc.Count))
		}
		logger.InfoContext(ctx, "column profile", attrs...)
	}
}
