package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rwanalytics/internal/dataset"
)

func cleanedSample(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New("productivity", []dataset.Column{
		{Name: "work_type", Kind: dataset.Categorical},
		{Name: "motivation_score", Kind: dataset.Numeric},
	})
	require.NoError(t, ds.AppendRow([]string{"Remote", "4.50"}))
	require.NoError(t, ds.AppendRow([]string{"Onsite", "3.00"}))
	return ds
}

func TestWriteDatasetCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "clean.csv")

	require.NoError(t, WriteDatasetCSV(path, cleanedSample(t), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// UTF-8 BOM first, then header and rows
	require.True(t, len(data) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	assert.Equal(t,
		"work_type,motivation_score\nRemote,4.50\nOnsite,3.00\n",
		string(data[3:]))
}

func TestWriteDatasetCSV_BadPath(t *testing.T) {
	// A path whose parent is a regular file cannot be created
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0644))

	err := WriteDatasetCSV(filepath.Join(parent, "clean.csv"), cleanedSample(t), nil)
	assert.Error(t, err)
}
