package cleaning

import "studentperf/internal/dataset"

// DedupStage removes exact full-row duplicates, keeping the first occurrence
// and the original relative order of surviving rows.
type DedupStage struct{}

func (DedupStage) Name() string { return "deduplicate" }

func (s DedupStage) Apply(t dataset.Table, obs Observer) (dataset.Table, error) {
	out := t.Clone()
	seen := make(map[string]struct{}, len(out.Rows))

	kept := out.Rows[:0]
	removed := 0
	for _, row := range out.Rows {
		key := row.Key()
		if _, dup := seen[key]; dup {
			removed++
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	out.Rows = kept

	obs.RowsRemoved(s.Name(), removed)
	return out, nil
}
