package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rwanalytics/internal/dataset"
)

func rawProductivity(t *testing.T) *dataset.Dataset {
	t.Helper()
	return buildDataset(t,
		[]dataset.Column{
			{Name: "Employee_ID", Kind: dataset.Numeric},
			{Name: "Department", Kind: dataset.Categorical},
			{Name: "Hire_Date", Kind: dataset.Categorical},
			{Name: "Team_Size", Kind: dataset.Numeric},
			{Name: "Remote_Work_Frequency", Kind: dataset.Numeric},
			{Name: "Promotions", Kind: dataset.Numeric},
			{Name: "Training_Hours", Kind: dataset.Numeric},
			{Name: "Employee_Satisfaction_Score", Kind: dataset.Numeric},
			{Name: "Performance_Score", Kind: dataset.Numeric},
		},
		[][]string{
			{"1", "IT", "2020-01-01", "8", "100", "2", "10", "4", "4"},
			{"2", "IT", "2021-03-15", "8", "50", "1", "5", "3", "3"},
			{"3", "IT", "2019-07-02", "8", "0", "0", "0", "2", "2"},
			{"4", "HR", "2022-05-20", "5", "100", "1", "8", "5", "5"},
			{"5", "IT", "2020-11-30", "8", "25", "2", "6", "4", "4"},
		})
}

func TestCleanProductivity(t *testing.T) {
	raw := rawProductivity(t)

	out, err := CleanProductivity(raw, nil)
	require.NoError(t, err)

	// HR row and the 25% frequency row are filtered out
	assert.Equal(t, 3, out.NumRows())

	// Identifier columns are gone, names lowercased, frequency relabeled
	assert.False(t, out.HasColumn("employee_id"))
	assert.False(t, out.HasColumn("hire_date"))
	assert.False(t, out.HasColumn("team_size"))
	assert.False(t, out.HasColumn("remote_work_frequency"))
	require.True(t, out.HasColumn("work_type"))

	labels, err := out.Strings("work_type")
	require.NoError(t, err)
	assert.Equal(t, []string{"Remote", "Hybrid", "Onsite"}, labels)

	kind, err := out.ColumnKind("work_type")
	require.NoError(t, err)
	assert.Equal(t, dataset.Categorical, kind)

	require.NoError(t, VerifyClean(raw, out))
}

func TestCleanProductivity_MotivationScore(t *testing.T) {
	raw := rawProductivity(t)

	out, err := CleanProductivity(raw, nil)
	require.NoError(t, err)
	require.True(t, out.HasColumn("motivation_score"))

	// Promotions max is 2 and training max is 10 among kept rows, so the
	// first row normalizes both to the scale ceiling:
	// (4 + 4 + 5 + 5) / 4 = 4.50
	scores, err := out.Strings("motivation_score")
	require.NoError(t, err)
	assert.Equal(t, []string{"4.50", "3.00", "1.50"}, scores)

	kind, err := out.ColumnKind("motivation_score")
	require.NoError(t, err)
	assert.Equal(t, dataset.Numeric, kind)
}

func TestCleanProductivity_MissingRequiredColumn(t *testing.T) {
	ds := buildDataset(t,
		[]dataset.Column{{Name: "Department", Kind: dataset.Categorical}},
		[][]string{{"IT"}})

	_, err := CleanProductivity(ds, nil)
	assert.Error(t, err)
}

func TestCleanProductivity_ImputesMissingScore(t *testing.T) {
	ds := buildDataset(t,
		[]dataset.Column{
			{Name: "Department", Kind: dataset.Categorical},
			{Name: "Remote_Work_Frequency", Kind: dataset.Numeric},
			{Name: "Promotions", Kind: dataset.Numeric},
			{Name: "Training_Hours", Kind: dataset.Numeric},
			{Name: "Employee_Satisfaction_Score", Kind: dataset.Numeric},
			{Name: "Performance_Score", Kind: dataset.Numeric},
		},
		[][]string{
			{"IT", "100", "1", "4", "4", ""},
			{"IT", "0", "1", "4", "4", "2"},
		})

	out, err := CleanProductivity(ds, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, out.NumRows())

	// The missing performance score takes the column mean of 2
	v, err := out.Value(0, "performance_score")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}
