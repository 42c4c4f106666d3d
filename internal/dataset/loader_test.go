package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantRows int
		wantErr  bool
	}{
		{
			name:     "valid file",
			content:  "work_setting,score\nremote,5\nonsite,3\n",
			wantRows: 2,
		},
		{
			name:     "bom prefix stripped",
			content:  "\xEF\xBB\xBFwork_setting,score\nremote,5\n",
			wantRows: 1,
		},
		{
			name:    "header only",
			content: "work_setting,score\n",
			wantErr: true,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: true,
		},
		{
			name:    "row width mismatch",
			content: "a,b\n1,2\n1,2,3\n",
			wantErr: true,
		},
		{
			name:    "empty header cell",
			content: "a,\n1,2\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.content)
			ds, err := LoadCSV(path, "test")

			if tt.wantErr {
				require.Error(t, err)
				var loadErr *LoadError
				assert.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, ds.NumRows())
		})
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), "test")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "nope.csv")
}

func TestLoadCSV_KindInference(t *testing.T) {
	path := writeTempCSV(t, "setting,hours,mixed\nremote,40,5\nonsite,35,abc\n")

	ds, err := LoadCSV(path, "test")
	require.NoError(t, err)

	kind, err := ds.ColumnKind("setting")
	require.NoError(t, err)
	assert.Equal(t, Categorical, kind)

	kind, err = ds.ColumnKind("hours")
	require.NoError(t, err)
	assert.Equal(t, Numeric, kind)

	// One non-numeric value makes the whole column categorical
	kind, err = ds.ColumnKind("mixed")
	require.NoError(t, err)
	assert.Equal(t, Categorical, kind)
}

func TestLoadCSV_MissingSentinels(t *testing.T) {
	path := writeTempCSV(t, "setting,stress\nremote,NA\nhybrid,None\nonsite,4\nremote,\n")

	ds, err := LoadCSV(path, "test")
	require.NoError(t, err)

	missing, err := ds.MissingCount("stress")
	require.NoError(t, err)
	assert.Equal(t, 3, missing)

	// A column that is numeric in every present cell stays numeric
	// despite missing sentinels
	kind, err := ds.ColumnKind("stress")
	require.NoError(t, err)
	assert.Equal(t, Numeric, kind)
}

func TestLoadCSV_FloatsMask(t *testing.T) {
	path := writeTempCSV(t, "score\n5\n\n3\n")

	ds, err := LoadCSV(path, "test")
	require.NoError(t, err)

	values, valid, err := ds.Floats("score")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 3}, values)
	assert.Equal(t, []bool{true, false, true}, valid)
}
