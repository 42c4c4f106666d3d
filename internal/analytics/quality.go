package analytics

import (
	"fmt"
	"log/slog"
	"math"

	"rwanalytics/internal/dataset"
)

// Warning is a non-fatal data-quality finding. Warnings are surfaced in
// the summary report, never raised as errors.
type Warning struct {
	Dataset string
	Column  string
	Reason  string
	Value   float64
}

// String formats the warning for the narrative report
func (w Warning) String() string {
	return fmt.Sprintf("%s.%s: %s (%.4f)", w.Dataset, w.Column, w.Reason, w.Value)
}

// lowVarianceCV is the coefficient-of-variation threshold below which
// group means are considered suspiciously uniform. Survey data with real
// effects separates group means by well over 5% of their level.
const lowVarianceCV = 0.05

// QualityReport inspects each numeric column for synthetic-data signals:
// group means that barely differ across the grouping dimension, and
// columns with (near) zero overall variance. All findings are non-fatal.
func QualityReport(ds *dataset.Dataset, groupCol string, order []string, logger *slog.Logger) ([]Warning, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := ds.RequireColumns(groupCol); err != nil {
		return nil, err
	}

	var warnings []Warning
	for _, col := range ds.NumericColumns() {
		grouped, err := groupValues(ds, groupCol, col)
		if err != nil {
			return nil, err
		}
		if len(grouped) < 2 {
			continue
		}

		var all []float64
		groupMeans := make([]float64, 0, len(grouped))
		for _, group := range orderGroups(grouped, order) {
			groupMeans = append(groupMeans, mean(grouped[group]))
			all = append(all, grouped[group]...)
		}

		if stdDev(all) == 0 {
			warnings = append(warnings, Warning{
				Dataset: ds.Name,
				Column:  col,
				Reason:  "column is constant across all rows",
				Value:   0,
			})
			continue
		}

		m := mean(groupMeans)
		if m == 0 {
			continue
		}
		cv := math.Abs(stdDev(groupMeans) / m)
		if cv < lowVarianceCV {
			warnings = append(warnings, Warning{
				Dataset: ds.Name,
				Column:  col,
				Reason:  fmt.Sprintf("group means nearly identical across %s; possible synthetic or low-variance data", groupCol),
				Value:   cv,
			})
		}
	}

	for _, w := range warnings {
		logger.Warn("data quality finding",
			slog.String("dataset", w.Dataset),
			slog.String("column", w.Column),
			slog.String("reason", w.Reason))
	}

	return warnings, nil
}
