package dataset

// Column names of the student performance dataset. The schema is fixed; no
// inference is performed.
const (
	ColStudentID       = "student_id"
	ColAge             = "age"
	ColGender          = "gender"
	ColAttendance      = "attendance"
	ColAssignmentScore = "assignment_score"
	ColExamScore       = "exam_score"
	ColFinalGrade      = "final_grade"
	ColDepartment      = "department"
)

// Columns lists the schema in canonical order.
var Columns = []string{
	ColStudentID,
	ColAge,
	ColGender,
	ColAttendance,
	ColAssignmentScore,
	ColExamScore,
	ColFinalGrade,
	ColDepartment,
}

// NumericColumns are coerced to numbers and imputed with the column median.
var NumericColumns = []string{ColAge, ColAttendance, ColAssignmentScore, ColExamScore}

// ScoreColumns are the score-like subset most prone to non-numeric garbage.
var ScoreColumns = []string{ColAssignmentScore, ColExamScore}

// PercentColumns are clamped into their declared range at the end of the run.
var PercentColumns = []string{ColAttendance, ColAssignmentScore, ColExamScore}

// CategoricalColumns get whitespace trimming and canonical casing.
var CategoricalColumns = []string{ColGender, ColDepartment, ColFinalGrade}

// ModeColumns are the categorical columns imputed with the column mode.
var ModeColumns = []string{ColGender, ColDepartment, ColFinalGrade}

// Range is an inclusive numeric bound.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Ranges declares the valid domain of each numeric column.
var Ranges = map[string]Range{
	ColAge:             {Min: 16, Max: 40},
	ColAttendance:      {Min: 0, Max: 100},
	ColAssignmentScore: {Min: 0, Max: 100},
	ColExamScore:       {Min: 0, Max: 100},
}
