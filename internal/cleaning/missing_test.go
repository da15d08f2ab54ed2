package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentperf/internal/dataset"
)

func TestIsSentinel(t *testing.T) {
	for _, s := range []string{"-", "N/A", "NA", "null", "missing", "None", ""} {
		assert.True(t, IsSentinel(s), "expected %q to be a sentinel", s)
	}
	// Matching is case-sensitive and exact.
	for _, s := range []string{"n/a", "na", "NULL", "Missing", "none", " ", "0"} {
		assert.False(t, IsSentinel(s), "expected %q not to be a sentinel", s)
	}
}

func TestSentinelStage(t *testing.T) {
	tbl := tableOf(
		textRow("S001", "N/A", "-", "null", "missing", "None", "", "NA"),
		textRow("S002", "20", "Male", "95", "80", "75", "A", "CS"),
	)
	obs := newCaptureObserver()

	out, err := SentinelStage{}.Apply(tbl, obs)
	require.NoError(t, err)

	for i, col := range out.Columns {
		if col == dataset.ColStudentID {
			continue
		}
		assert.True(t, out.Rows[0][i].IsAbsent(), "column %s should be absent", col)
		assert.False(t, out.Rows[1][i].IsAbsent(), "column %s should be present", col)
	}
	assert.Equal(t, 1, obs.changed["normalize-missing/"+dataset.ColAge])
	assert.Equal(t, 0, obs.changed["normalize-missing/"+dataset.ColStudentID])
}

func TestSentinelStage_LeavesNumberCellsAlone(t *testing.T) {
	row := textRow("S001", "20", "Male", "95", "80", "75", "A", "CS")
	idx := 1
	row[idx] = dataset.NumberCell(20)

	out, err := SentinelStage{}.Apply(tableOf(row), NopObserver{})
	require.NoError(t, err)
	assert.Equal(t, dataset.KindNumber, out.Rows[0][idx].Kind())
}
