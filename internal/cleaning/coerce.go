package cleaning

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"studentperf/internal/dataset"
)

// CoerceStage parses the numeric columns into number cells. A value that
// fails to parse becomes the absent-value marker; coercion never raises on
// malformed input. Newly-absent counts per column are reported for
// diagnostics only.
type CoerceStage struct{}

func (CoerceStage) Name() string { return "coerce-numeric" }

func (s CoerceStage) Apply(t dataset.Table, obs Observer) (dataset.Table, error) {
	out := t.Clone()

	for _, col := range dataset.NumericColumns {
		idx, ok := out.ColumnIndex(col)
		if !ok {
			return dataset.Table{}, fmt.Errorf("column %q not found", col)
		}

		newlyAbsent := 0
		for _, row := range out.Rows {
			switch cell := row[idx]; cell.Kind() {
			case dataset.KindNumber, dataset.KindAbsent:
				// Already coerced or already missing.
			case dataset.KindText:
				v, err := strconv.ParseFloat(strings.TrimSpace(cell.Text()), 64)
				// ParseFloat accepts "NaN" and "Inf" spellings; neither is a
				// usable domain value, so they count as missing too.
				if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					row[idx] = dataset.AbsentCell()
					newlyAbsent++
				} else {
					row[idx] = dataset.NumberCell(v)
				}
			}
		}
		obs.CellsChanged(s.Name(), col, newlyAbsent)
	}
	return out, nil
}
