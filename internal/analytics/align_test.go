package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rwanalytics/internal/dataset"
)

func TestAlignOnWorkType(t *testing.T) {
	left := buildDataset(t,
		[]dataset.Column{
			{Name: "work_type", Kind: dataset.Categorical},
			{Name: "motivation", Kind: dataset.Numeric},
		},
		[][]string{
			{"Remote", "4"},
			{"Remote", "6"},
			{"Onsite", "3"},
		})
	right := buildDataset(t,
		[]dataset.Column{
			{Name: "work_type", Kind: dataset.Categorical},
			{Name: "isolation", Kind: dataset.Numeric},
		},
		[][]string{
			{"Remote", "4"},
			{"Hybrid", "2"},
		})

	aligned, err := AlignOnWorkType(left, right,
		[]string{"Remote", "Hybrid", "Onsite"},
		[]string{"motivation"}, []string{"isolation"})
	require.NoError(t, err)
	require.Len(t, aligned, 3)

	remote := aligned[0]
	assert.Equal(t, "Remote", remote.Group)
	assert.Equal(t, 2, remote.LeftCount)
	assert.Equal(t, 1, remote.RightCount)
	assert.Equal(t, 5.0, remote.LeftMean["motivation"])
	assert.Equal(t, 4.0, remote.RightMean["isolation"])

	// Hybrid only appears in the right dataset, Onsite only in the left;
	// both still show up with a zero count on the missing side.
	hybrid := aligned[1]
	assert.Equal(t, "Hybrid", hybrid.Group)
	assert.Zero(t, hybrid.LeftCount)
	assert.Equal(t, 1, hybrid.RightCount)

	onsite := aligned[2]
	assert.Equal(t, "Onsite", onsite.Group)
	assert.Equal(t, 1, onsite.LeftCount)
	assert.Zero(t, onsite.RightCount)
}

func TestAlignOnWorkType_MissingGroupColumn(t *testing.T) {
	left := buildDataset(t,
		[]dataset.Column{{Name: "work_type", Kind: dataset.Categorical}},
		[][]string{{"Remote"}})
	right := buildDataset(t,
		[]dataset.Column{{Name: "location", Kind: dataset.Categorical}},
		[][]string{{"Remote"}})

	_, err := AlignOnWorkType(left, right, nil, nil, nil)
	assert.Error(t, err)
}
