package cleaning

import (
	"fmt"

	"studentperf/internal/dataset"
)

// ClampStage bounds the percent columns (attendance and the two scores) into
// [0, 100]: values below 0 become 0, values above 100 become 100. Unlike the
// age correction this is boundary-clamp policy; the asymmetry is contractual.
type ClampStage struct{}

func (ClampStage) Name() string { return "clamp-ranges" }

func (s ClampStage) Apply(t dataset.Table, obs Observer) (dataset.Table, error) {
	out := t.Clone()

	for _, col := range dataset.PercentColumns {
		idx, ok := out.ColumnIndex(col)
		if !ok {
			return dataset.Table{}, fmt.Errorf("column %q not found", col)
		}
		bounds := dataset.Ranges[col]

		clamped := 0
		for _, row := range out.Rows {
			if row[idx].Kind() != dataset.KindNumber {
				continue
			}
			switch v := row[idx].Number(); {
			case v < bounds.Min:
				row[idx] = dataset.NumberCell(bounds.Min)
				clamped++
			case v > bounds.Max:
				row[idx] = dataset.NumberCell(bounds.Max)
				clamped++
			}
		}
		obs.CellsChanged(s.Name(), col, clamped)
	}
	return out, nil
}
