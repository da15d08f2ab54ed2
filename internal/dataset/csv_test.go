package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validHeader = "student_id,age,gender,attendance,assignment_score,exam_score,final_grade,department"

func TestLoad(t *testing.T) {
	content := validHeader + "\n" +
		"S001,20,Male,95,80,75,A,CS\n" +
		"S002,22,F,88.5,N/A,60,B,it\n"

	tbl, err := Load(writeTempCSV(t, content))
	require.NoError(t, err)

	rows, cols := tbl.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 8, cols)
	assert.Equal(t, strings.Split(validHeader, ","), tbl.Columns)

	// Everything loads as text; interpretation belongs to the pipeline.
	for _, row := range tbl.Rows {
		for _, cell := range row {
			assert.Equal(t, KindText, cell.Kind())
		}
	}
	assert.Equal(t, "N/A", tbl.Rows[1][4].Text())
}

func TestLoad_PreservesSourceColumnOrder(t *testing.T) {
	content := "age,student_id,gender,attendance,assignment_score,exam_score,final_grade,department\n" +
		"20,S001,Male,95,80,75,A,CS\n"

	tbl, err := Load(writeTempCSV(t, content))
	require.NoError(t, err)
	assert.Equal(t, "age", tbl.Columns[0])
	assert.Equal(t, "student_id", tbl.Columns[1])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "empty file",
			content: "",
			wantErr: ErrEmptyFile,
		},
		{
			name:    "missing column",
			content: "student_id,age,gender,attendance,assignment_score,exam_score,final_grade\nS1,20,M,1,2,3,A\n",
			wantErr: ErrHeaderMismatch,
		},
		{
			name:    "extra column",
			content: validHeader + ",extra\nS1,20,M,1,2,3,A,CS,x\n",
			wantErr: ErrHeaderMismatch,
		},
		{
			name:    "duplicate column",
			content: "student_id,age,age,attendance,assignment_score,exam_score,final_grade,department\nS1,20,21,1,2,3,A,CS\n",
			wantErr: ErrHeaderMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTempCSV(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_RaggedRowFails(t *testing.T) {
	content := validHeader + "\nS001,20,Male\n"
	_, err := Load(writeTempCSV(t, content))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
