package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentperf/internal/dataset"
)

func cleanRow(id string, age float64) dataset.Row {
	return dataset.Row{
		dataset.TextCell(id),
		dataset.NumberCell(age),
		dataset.TextCell("Male"),
		dataset.NumberCell(95),
		dataset.NumberCell(80),
		dataset.NumberCell(75.5),
		dataset.TextCell("A"),
		dataset.TextCell("Cs"),
	}
}

func cleanTable(rows ...dataset.Row) dataset.Table {
	cols := make([]string, len(dataset.Columns))
	copy(cols, dataset.Columns)
	return dataset.Table{Columns: cols, Rows: rows}
}

func TestValidateTable_CleanTablePasses(t *testing.T) {
	v := NewRecordValidator(nil)
	err := v.ValidateTable(cleanTable(cleanRow("S001", 20), cleanRow("S002", 40)))
	assert.NoError(t, err)
}

func TestValidateTable_EmptyTablePasses(t *testing.T) {
	assert.NoError(t, NewRecordValidator(nil).ValidateTable(cleanTable()))
}

func TestValidateTable_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r dataset.Row)
	}{
		{
			name: "age below range",
			mutate: func(r dataset.Row) { r[1] = dataset.NumberCell(15) },
		},
		{
			name: "age above range",
			mutate: func(r dataset.Row) { r[1] = dataset.NumberCell(41) },
		},
		{
			name: "fractional age",
			mutate: func(r dataset.Row) { r[1] = dataset.NumberCell(20.5) },
		},
		{
			name: "attendance above range",
			mutate: func(r dataset.Row) { r[3] = dataset.NumberCell(101) },
		},
		{
			name: "negative exam score",
			mutate: func(r dataset.Row) { r[5] = dataset.NumberCell(-1) },
		},
		{
			name: "absent cell",
			mutate: func(r dataset.Row) { r[6] = dataset.AbsentCell() },
		},
		{
			name: "uncoerced score",
			mutate: func(r dataset.Row) { r[4] = dataset.TextCell("80") },
		},
		{
			name: "missing student id",
			mutate: func(r dataset.Row) { r[0] = dataset.TextCell("") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := cleanRow("S001", 20)
			tt.mutate(row)
			err := NewRecordValidator(nil).ValidateTable(cleanTable(row))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "row 0")
		})
	}
}

func TestValidateTable_OutOfVocabularyGenderAllowed(t *testing.T) {
	row := cleanRow("S001", 20)
	row[2] = dataset.TextCell("Other")
	assert.NoError(t, NewRecordValidator(nil).ValidateTable(cleanTable(row)))
}

func TestValidateTable_ReportsRowPosition(t *testing.T) {
	bad := cleanRow("S002", 50)
	err := NewRecordValidator(nil).ValidateTable(cleanTable(cleanRow("S001", 20), bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}
