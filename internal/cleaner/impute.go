package cleaner

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"rwanalytics/internal/dataset"
)

// Policy selects how missing values in one column are resolved
type Policy int

const (
	// ImputeMean replaces missing numeric cells with the column mean
	ImputeMean Policy = iota
	// ImputeMode replaces missing categorical cells with the most frequent value
	ImputeMode
	// DropRow removes rows where the cell is missing
	DropRow
)

// String returns a human-readable policy name
func (p Policy) String() string {
	switch p {
	case ImputeMean:
		return "mean"
	case ImputeMode:
		return "mode"
	default:
		return "drop_row"
	}
}

// defaultPolicy is the fixed per-kind resolution policy: numeric columns
// take the column mean, categorical columns take the mode. Group-key
// columns are handled separately with DropRow.
func defaultPolicy(kind dataset.Kind) Policy {
	if kind == dataset.Numeric {
		return ImputeMean
	}
	return ImputeMode
}

// ResolveMissing resolves every missing cell in the dataset. Rows missing
// any of the dropColumns (group keys) are removed first; remaining
// columns are imputed by the fixed per-kind policy. The result contains
// no missing cells.
func ResolveMissing(ds *dataset.Dataset, dropColumns []string, logger *slog.Logger) (*dataset.Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := ds.RequireColumns(dropColumns...); err != nil {
		return nil, err
	}

	// Drop rows missing a group key; imputing a grouping dimension would
	// fabricate group membership.
	before := ds.NumRows()
	out := ds.Filter(func(r dataset.Record) bool {
		for _, name := range dropColumns {
			if r.Get(name) == "" {
				return false
			}
		}
		return true
	})
	if dropped := before - out.NumRows(); dropped > 0 {
		logger.Info("dropped rows missing group key",
			slog.Int("rows", dropped),
			slog.Any("columns", dropColumns))
	}

	for _, col := range out.Columns() {
		missing, err := out.MissingCount(col.Name)
		if err != nil {
			return nil, err
		}
		if missing == 0 {
			continue
		}

		policy := defaultPolicy(col.Kind)
		var filled *dataset.Dataset
		switch policy {
		case ImputeMean:
			filled, err = imputeMean(out, col.Name)
		default:
			filled, err = imputeMode(out, col.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("impute column %s: %w", col.Name, err)
		}
		out = filled

		logger.Info("imputed missing values",
			slog.String("column", col.Name),
			slog.String("policy", policy.String()),
			slog.Int("cells", missing))
	}

	return out, nil
}

// imputeMean replaces missing cells with the mean of the present values
func imputeMean(ds *dataset.Dataset, name string) (*dataset.Dataset, error) {
	values, valid, err := ds.Floats(name)
	if err != nil {
		return nil, err
	}

	var sum float64
	var n int
	for i, ok := range valid {
		if ok {
			sum += values[i]
			n++
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("no present values to average")
	}
	mean := sum / float64(n)
	meanCell := strconv.FormatFloat(mean, 'f', -1, 64)

	cells, err := ds.Strings(name)
	if err != nil {
		return nil, err
	}
	for i, cell := range cells {
		if cell == "" {
			cells[i] = meanCell
		}
	}
	return ds.SetColumn(name, cells)
}

// imputeMode replaces missing cells with the most frequent present value.
// Ties break toward the lexicographically smallest value so repeated runs
// stay deterministic.
func imputeMode(ds *dataset.Dataset, name string) (*dataset.Dataset, error) {
	cells, err := ds.Strings(name)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, cell := range cells {
		if cell != "" {
			counts[cell]++
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no present values to take mode from")
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	mode := labels[0]
	for _, label := range labels[1:] {
		if counts[label] > counts[mode] {
			mode = label
		}
	}

	for i, cell := range cells {
		if cell == "" {
			cells[i] = mode
		}
	}
	return ds.SetColumn(name, cells)
}
