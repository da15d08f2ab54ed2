// Package validation provides the final verification pass over a cleaned
// table: every row is mapped into a typed record and checked against the
// declared domain constraints. A violation after a pipeline run means the
// pipeline itself is broken, so failures are fatal.
package validation

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-playground/validator/v10"

	"studentperf/internal/dataset"
)

// Record is the cleaned shape of one row.
//
// The gender vocabulary is deliberately not enforced: out-of-vocabulary
// gender values pass through the alias map verbatim, so "required" is the
// strongest claim that holds.
type Record struct {
	StudentID       string  `validate:"required"`
	Age             int     `validate:"min=16,max=40"`
	Gender          string  `validate:"required"`
	Attendance      float64 `validate:"min=0,max=100"`
	AssignmentScore float64 `validate:"min=0,max=100"`
	ExamScore       float64 `validate:"min=0,max=100"`
	FinalGrade      string  `validate:"required"`
	Department      string  `validate:"required"`
}

// RecordValidator verifies cleaned tables.
type RecordValidator struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewRecordValidator creates a validator instance.
func NewRecordValidator(logger *slog.Logger) *RecordValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordValidator{
		logger:   logger,
		validate: validator.New(),
	}
}

// ValidateTable checks every row of a cleaned table. The first violation is
// returned with its row position; a cleaned table must have none.
func (v *RecordValidator) ValidateTable(t dataset.Table) error {
	for i := range t.Rows {
		rec, err := v.recordFrom(t, i)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := v.validate.Struct(rec); err != nil {
			return fmt.Errorf("row %d failed validation: %w", i, err)
		}
	}

	v.logger.Info("cleaned table validated",
		slog.Int("rows", len(t.Rows)))
	return nil
}

// recordFrom converts one row into a typed Record. Absent cells and
// non-integral ages are conversion errors: neither may survive cleaning.
func (v *RecordValidator) recordFrom(t dataset.Table, row int) (Record, error) {
	var rec Record

	text := func(col string) (string, error) {
		idx, ok := t.ColumnIndex(col)
		if !ok {
			return "", fmt.Errorf("column %q not found", col)
		}
		cell := t.Rows[row][idx]
		if cell.Kind() != dataset.KindText {
			return "", fmt.Errorf("column %q is not text", col)
		}
		return cell.Text(), nil
	}
	number := func(col string) (float64, error) {
		idx, ok := t.ColumnIndex(col)
		if !ok {
			return 0, fmt.Errorf("column %q not found", col)
		}
		cell := t.Rows[row][idx]
		if cell.Kind() != dataset.KindNumber {
			return 0, fmt.Errorf("column %q is not numeric", col)
		}
		return cell.Number(), nil
	}

	var err error
	if rec.StudentID, err = text(dataset.ColStudentID); err != nil {
		return rec, err
	}
	if rec.Gender, err = text(dataset.ColGender); err != nil {
		return rec, err
	}
	if rec.FinalGrade, err = text(dataset.ColFinalGrade); err != nil {
		return rec, err
	}
	if rec.Department, err = text(dataset.ColDepartment); err != nil {
		return rec, err
	}
	if rec.Attendance, err = number(dataset.ColAttendance); err != nil {
		return rec, err
	}
	if rec.AssignmentScore, err = number(dataset.ColAssignmentScore); err != nil {
		return rec, err
	}
	if rec.ExamScore, err = number(dataset.ColExamScore); err != nil {
		return rec, err
	}

	age, err := number(dataset.ColAge)
	if err != nil {
		return rec, err
	}
	if age != math.Trunc(age) {
		return rec, fmt.Errorf("age %v is not a whole number", age)
	}
	rec.Age = int(age)

	return rec, nil
}
