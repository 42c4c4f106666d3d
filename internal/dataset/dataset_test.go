package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset(t *testing.T) *Dataset {
	t.Helper()
	ds := New("sample", []Column{
		{Name: "work_type", Kind: Categorical},
		{Name: "score", Kind: Numeric},
	})
	for _, row := range [][]string{
		{"Remote", "5"},
		{"Hybrid", "6"},
		{"Onsite", "3"},
	} {
		require.NoError(t, ds.AppendRow(row))
	}
	return ds
}

func TestAppendRow_WidthMismatch(t *testing.T) {
	ds := New("sample", []Column{{Name: "a"}, {Name: "b"}})
	assert.Error(t, ds.AppendRow([]string{"1"}))
	assert.Error(t, ds.AppendRow([]string{"1", "2", "3"}))
	assert.NoError(t, ds.AppendRow([]string{"1", "2"}))
}

func TestFilter(t *testing.T) {
	ds := sampleDataset(t)

	kept := ds.Filter(func(r Record) bool {
		return r.Get("work_type") != "Onsite"
	})

	assert.Equal(t, 2, kept.NumRows())
	assert.Equal(t, 3, ds.NumRows(), "filter must not mutate the receiver")
}

func TestDropColumns(t *testing.T) {
	ds := sampleDataset(t)

	out := ds.DropColumns("score", "does_not_exist")

	assert.Equal(t, []string{"work_type"}, out.ColumnNames())
	assert.Equal(t, 3, out.NumRows())
	assert.True(t, ds.HasColumn("score"), "drop must not mutate the receiver")
}

func TestRenameColumn(t *testing.T) {
	ds := sampleDataset(t)

	out, err := ds.RenameColumn("work_type", "setting")
	require.NoError(t, err)
	assert.True(t, out.HasColumn("setting"))
	assert.False(t, out.HasColumn("work_type"))

	_, err = ds.RenameColumn("missing", "x")
	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestAddColumn(t *testing.T) {
	ds := sampleDataset(t)

	out, err := ds.AddColumn(Column{Name: "grade", Kind: Categorical}, []string{"High", "High", "Low"})
	require.NoError(t, err)
	v, err := out.Value(2, "grade")
	require.NoError(t, err)
	assert.Equal(t, "Low", v)

	_, err = ds.AddColumn(Column{Name: "grade"}, []string{"only-one"})
	assert.Error(t, err, "value count must match row count")

	_, err = ds.AddColumn(Column{Name: "score"}, []string{"1", "2", "3"})
	assert.Error(t, err, "duplicate column name must be rejected")
}

func TestSetColumn(t *testing.T) {
	ds := sampleDataset(t)

	out, err := ds.SetColumn("score", []string{"1", "2", "3"})
	require.NoError(t, err)

	v, err := out.Value(0, "score")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	v, err = ds.Value(0, "score")
	require.NoError(t, err)
	assert.Equal(t, "5", v, "set must not mutate the receiver")
}

func TestRecordFloat(t *testing.T) {
	ds := New("sample", []Column{{Name: "score", Kind: Numeric}})
	require.NoError(t, ds.AppendRow([]string{"4.5"}))
	require.NoError(t, ds.AppendRow([]string{""}))

	v, ok := ds.Row(0).Float("score")
	assert.True(t, ok)
	assert.Equal(t, 4.5, v)

	_, ok = ds.Row(1).Float("score")
	assert.False(t, ok)
}

func TestNumericColumns(t *testing.T) {
	ds := sampleDataset(t)
	assert.Equal(t, []string{"score"}, ds.NumericColumns())
}
