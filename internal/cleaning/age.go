package cleaning

import (
	"fmt"
	"math"

	"studentperf/internal/dataset"
	"studentperf/internal/stats"
)

// AgeBoundStage integerizes the age column and corrects out-of-range values.
//
// Ages are rounded to whole years first. The dataset-wide median is then
// recomputed over the integerized column, including the out-of-range values
// themselves; any age outside [16, 40] is overwritten with that median. This
// is a second, independent median computation, never a reuse of the
// imputation median, and it is overwrite-on-violation rather than a clamp:
// an out-of-range age is treated as replaceable garbage, not a value to pull
// to the nearest boundary.
type AgeBoundStage struct{}

func (AgeBoundStage) Name() string { return "age-bounds" }

func (s AgeBoundStage) Apply(t dataset.Table, obs Observer) (dataset.Table, error) {
	out := t.Clone()

	idx, ok := out.ColumnIndex(dataset.ColAge)
	if !ok {
		return dataset.Table{}, fmt.Errorf("column %q not found", dataset.ColAge)
	}
	bounds := dataset.Ranges[dataset.ColAge]

	rounded := 0
	all := make([]float64, 0, len(out.Rows))
	for _, row := range out.Rows {
		if row[idx].Kind() != dataset.KindNumber {
			continue
		}
		v := math.Round(row[idx].Number())
		if v != row[idx].Number() {
			row[idx] = dataset.NumberCell(v)
			rounded++
		}
		all = append(all, v)
	}

	// The median itself stays integral: with an even row count it can land
	// on .5, which is not a representable age.
	median := math.Round(stats.Median(all))

	corrected := 0
	for _, row := range out.Rows {
		if row[idx].Kind() != dataset.KindNumber {
			continue
		}
		if !bounds.Contains(row[idx].Number()) {
			row[idx] = dataset.NumberCell(median)
			corrected++
		}
	}

	obs.CellsChanged(s.Name(), dataset.ColAge, rounded+corrected)
	return out, nil
}
