package cleaning

import (
	"fmt"
	"strings"
	"unicode"

	"studentperf/internal/dataset"
)

// genderAliases collapses known shorthand after the casing transform has run.
// Values outside the map pass through unchanged, so out-of-vocabulary genders
// are preserved verbatim. Known gap, kept deliberately: the source data's
// intent for such values is ambiguous and silently rewriting them would be
// worse than leaving them visible.
var genderAliases = map[string]string{
	"M":      "Male",
	"F":      "Female",
	"Male":   "Male",
	"Female": "Female",
}

// StandardizeStage normalizes the categorical columns: trim surrounding
// whitespace, lowercase, then capitalize each whitespace-separated word
// ("  cs " -> "Cs", "FEMALE" -> "Female"). The gender column additionally
// goes through the alias map.
//
// Runs after imputation so imputed mode values receive the same treatment.
type StandardizeStage struct{}

func (StandardizeStage) Name() string { return "standardize" }

func (s StandardizeStage) Apply(t dataset.Table, obs Observer) (dataset.Table, error) {
	out := t.Clone()

	for _, col := range dataset.CategoricalColumns {
		idx, ok := out.ColumnIndex(col)
		if !ok {
			return dataset.Table{}, fmt.Errorf("column %q not found", col)
		}

		changed := 0
		for _, row := range out.Rows {
			cell := row[idx]
			if cell.Kind() != dataset.KindText {
				continue
			}
			v := titleCaseWords(cell.Text())
			if col == dataset.ColGender {
				if mapped, ok := genderAliases[v]; ok {
					v = mapped
				}
			}
			if v != cell.Text() {
				row[idx] = dataset.TextCell(v)
				changed++
			}
		}
		obs.CellsChanged(s.Name(), col, changed)
	}
	return out, nil
}

// titleCaseWords lowercases s and capitalizes the first letter of each
// whitespace-separated word, collapsing internal runs of whitespace.
func titleCaseWords(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		r := []rune(f)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
