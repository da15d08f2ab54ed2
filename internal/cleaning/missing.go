package cleaning

import "studentperf/internal/dataset"

// missingSentinels are the literal markers the source data uses for
// missingness. Matching is exact and case-sensitive.
var missingSentinels = map[string]struct{}{
	"-":       {},
	"N/A":     {},
	"NA":      {},
	"null":    {},
	"missing": {},
	"None":    {},
	"":        {},
}

// IsSentinel reports whether the given text is a missing-value marker.
func IsSentinel(s string) bool {
	_, ok := missingSentinels[s]
	return ok
}

// SentinelStage converts sentinel markers in text cells to the absent-value
// marker. Cells of other kinds are untouched.
type SentinelStage struct{}

func (SentinelStage) Name() string { return "normalize-missing" }

func (s SentinelStage) Apply(t dataset.Table, obs Observer) (dataset.Table, error) {
	out := t.Clone()
	changed := make(map[string]int)

	for _, row := range out.Rows {
		for i, cell := range row {
			if cell.Kind() != dataset.KindText {
				continue
			}
			if IsSentinel(cell.Text()) {
				row[i] = dataset.AbsentCell()
				changed[out.Columns[i]]++
			}
		}
	}

	for _, col := range out.Columns {
		obs.CellsChanged(s.Name(), col, changed[col])
	}
	return out, nil
}
