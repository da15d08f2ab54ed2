package cleaning

import (
	"studentperf/internal/dataset"
)

// tableOf builds a table over the canonical schema order:
// student_id, age, gender, attendance, assignment_score, exam_score,
// final_grade, department.
func tableOf(rows ...dataset.Row) dataset.Table {
	cols := make([]string, len(dataset.Columns))
	copy(cols, dataset.Columns)
	return dataset.Table{Columns: cols, Rows: rows}
}

// textRow builds a row of text cells in schema order.
func textRow(values ...string) dataset.Row {
	row := make(dataset.Row, len(values))
	for i, v := range values {
		row[i] = dataset.TextCell(v)
	}
	return row
}

// captureObserver records diagnostic events for assertions.
type captureObserver struct {
	started   []string
	completed []string
	removed   map[string]int
	changed   map[string]int // "stage/column" -> count
}

func newCaptureObserver() *captureObserver {
	return &captureObserver{
		removed: make(map[string]int),
		changed: make(map[string]int),
	}
}

func (o *captureObserver) StageStarted(stage string, _ int) {
	o.started = append(o.started, stage)
}

func (o *captureObserver) StageCompleted(stage string, _ int) {
	o.completed = append(o.completed, stage)
}

func (o *captureObserver) RowsRemoved(stage string, count int) {
	o.removed[stage] += count
}

func (o *captureObserver) CellsChanged(stage, column string, count int) {
	o.changed[stage+"/"+column] += count
}

// cellAt fetches a cell by column name, for terse assertions.
func cellAt(t dataset.Table, row int, col string) dataset.Cell {
	idx, ok := t.ColumnIndex(col)
	if !ok {
		return dataset.AbsentCell()
	}
	return t.Rows[row][idx]
}
