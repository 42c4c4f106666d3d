package analytics

import (
	"fmt"

	"rwanalytics/internal/dataset"
)

// AlignedGroup pairs per-group means from two independently collected
// datasets that share a grouping dimension but no respondent key.
type AlignedGroup struct {
	Group      string
	LeftCount  int
	RightCount int
	LeftMean   map[string]float64
	RightMean  map[string]float64
}

// AlignOnWorkType aligns two datasets on their shared work_type
// dimension, producing side-by-side group means. Groups present in only
// one dataset are kept with a zero count on the other side so the
// comparison never silently drops a category.
func AlignOnWorkType(left, right *dataset.Dataset, order []string, leftCols, rightCols []string) ([]AlignedGroup, error) {
	const groupCol = "work_type"

	leftSummaries, err := GroupMeans(left, groupCol, order, leftCols...)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", left.Name, err)
	}
	rightSummaries, err := GroupMeans(right, groupCol, order, rightCols...)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", right.Name, err)
	}

	leftByGroup := make(map[string]GroupSummary, len(leftSummaries))
	for _, s := range leftSummaries {
		leftByGroup[s.Group] = s
	}
	rightByGroup := make(map[string]GroupSummary, len(rightSummaries))
	for _, s := range rightSummaries {
		rightByGroup[s.Group] = s
	}

	observed := make(map[string]bool)
	for group := range leftByGroup {
		observed[group] = true
	}
	for group := range rightByGroup {
		observed[group] = true
	}

	var aligned []AlignedGroup
	for _, group := range orderGroups(observed, order) {
		ag := AlignedGroup{
			Group:     group,
			LeftMean:  map[string]float64{},
			RightMean: map[string]float64{},
		}
		if s, ok := leftByGroup[group]; ok {
			ag.LeftCount = s.Count
			ag.LeftMean = s.Mean
		}
		if s, ok := rightByGroup[group]; ok {
			ag.RightCount = s.Count
			ag.RightMean = s.Mean
		}
		aligned = append(aligned, ag)
	}

	return aligned, nil
}
