package analytics

import (
	"fmt"
	"sort"

	"rwanalytics/internal/dataset"
)

// GroupSummary is the aggregate for one group: row count plus the mean
// of each requested numeric column. Recomputed on demand, never mutated.
type GroupSummary struct {
	Group string
	Count int
	Mean  map[string]float64
}

// GroupMeans groups the dataset on a categorical column and averages the
// requested numeric columns per group. Groups appear in the given order;
// groups absent from the order (or all groups, when order is nil) follow
// lexicographically, so output is deterministic for identical input.
func GroupMeans(ds *dataset.Dataset, groupCol string, order []string, valueCols ...string) ([]GroupSummary, error) {
	if err := ds.RequireColumns(append([]string{groupCol}, valueCols...)...); err != nil {
		return nil, err
	}

	groups, err := ds.Strings(groupCol)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]map[string]float64)
	counts := make(map[string]int)
	valueCounts := make(map[string]map[string]int)

	for _, col := range valueCols {
		values, valid, err := ds.Floats(col)
		if err != nil {
			return nil, err
		}
		for r, group := range groups {
			if group == "" || !valid[r] {
				continue
			}
			if sums[group] == nil {
				sums[group] = make(map[string]float64)
				valueCounts[group] = make(map[string]int)
			}
			sums[group][col] += values[r]
			valueCounts[group][col]++
		}
	}

	for _, group := range groups {
		if group != "" {
			counts[group]++
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("column %s has no group values", groupCol)
	}

	summaries := make([]GroupSummary, 0, len(counts))
	for _, group := range orderGroups(counts, order) {
		summary := GroupSummary{
			Group: group,
			Count: counts[group],
			Mean:  make(map[string]float64, len(valueCols)),
		}
		for _, col := range valueCols {
			if n := valueCounts[group][col]; n > 0 {
				summary.Mean[col] = sums[group][col] / float64(n)
			}
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// groupValues collects the per-group values of one numeric column
func groupValues(ds *dataset.Dataset, groupCol, valueCol string) (map[string][]float64, error) {
	groups, err := ds.Strings(groupCol)
	if err != nil {
		return nil, err
	}
	values, valid, err := ds.Floats(valueCol)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]float64)
	for r, group := range groups {
		if group == "" || !valid[r] {
			continue
		}
		grouped[group] = append(grouped[group], values[r])
	}
	return grouped, nil
}

// orderGroups returns the observed group labels: labels named in the
// preferred order first (when present), remaining labels sorted.
func orderGroups[V any](observed map[string]V, order []string) []string {
	seen := make(map[string]bool, len(order))
	var result []string
	for _, label := range order {
		if _, ok := observed[label]; ok {
			result = append(result, label)
			seen[label] = true
		}
	}

	var rest []string
	for label := range observed {
		if !seen[label] {
			rest = append(rest, label)
		}
	}
	sort.Strings(rest)
	return append(result, rest...)
}
