// Package dataset defines the in-memory record table the cleaning pipeline
// operates on, the fixed student-performance schema, and the CSV loader.
//
// Every cell carries an explicit kind so that missingness is a first-class
// value rather than a magic string: a cell is Absent, Text, or Number. Parse
// failures become Absent cells, never errors, which keeps the coercion
// contract visible in signatures instead of buried in library behavior.
package dataset

import (
	"strconv"
	"strings"
)

// CellKind identifies what a cell holds.
type CellKind uint8

const (
	// KindAbsent marks a missing value, distinct from any valid domain value.
	KindAbsent CellKind = iota
	// KindText holds an uninterpreted string.
	KindText
	// KindNumber holds a parsed floating-point value.
	KindNumber
)

// Cell is a single table value. The zero value is an absent cell.
type Cell struct {
	kind CellKind
	text string
	num  float64
}

// AbsentCell returns the absent-value marker.
func AbsentCell() Cell {
	return Cell{kind: KindAbsent}
}

// TextCell returns a cell holding the given string.
func TextCell(s string) Cell {
	return Cell{kind: KindText, text: s}
}

// NumberCell returns a cell holding the given number.
func NumberCell(v float64) Cell {
	return Cell{kind: KindNumber, num: v}
}

// Kind returns the cell's kind.
func (c Cell) Kind() CellKind { return c.kind }

// IsAbsent reports whether the cell is the absent-value marker.
func (c Cell) IsAbsent() bool { return c.kind == KindAbsent }

// Text returns the cell's string content. It is only meaningful for KindText.
func (c Cell) Text() string { return c.text }

// Number returns the cell's numeric content. It is only meaningful for KindNumber.
func (c Cell) Number() float64 { return c.num }

// Equal reports whether two cells hold the same kind and value.
func (c Cell) Equal(o Cell) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case KindText:
		return c.text == o.text
	case KindNumber:
		return c.num == o.num
	default:
		return true
	}
}

// String renders the cell for output. Numbers use the shortest decimal form
// that round-trips, so integral values carry no decimal point. Absent cells
// render empty; none should survive a completed pipeline run.
func (c Cell) String() string {
	switch c.kind {
	case KindText:
		return c.text
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Row is one record, with cells aligned to the table's column order.
type Row []Cell

// Key returns a canonical identity string for the row. Two rows share a key
// exactly when every cell is Equal, so an absent cell and an empty text cell
// never collide.
func (r Row) Key() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteByte(byte('0' + c.kind))
		b.WriteString(c.String())
		b.WriteByte(0x1f)
	}
	return b.String()
}

// Table is an ordered collection of rows over a fixed set of columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// Shape returns the row and column counts.
func (t Table) Shape() (rows, cols int) {
	return len(t.Rows), len(t.Columns)
}

// ColumnIndex returns the position of the named column.
func (t Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Clone returns a deep copy. Stages mutate clones so their inputs stay intact.
func (t Table) Clone() Table {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)

	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := make(Row, len(r))
		copy(nr, r)
		rows[i] = nr
	}
	return Table{Columns: cols, Rows: rows}
}

// Equal reports whether two tables have identical columns and cell values.
func (t Table) Equal(o Table) bool {
	if len(t.Columns) != len(o.Columns) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Columns {
		if t.Columns[i] != o.Columns[i] {
			return false
		}
	}
	for i := range t.Rows {
		if len(t.Rows[i]) != len(o.Rows[i]) {
			return false
		}
		for j := range t.Rows[i] {
			if !t.Rows[i][j].Equal(o.Rows[i][j]) {
				return false
			}
		}
	}
	return true
}
