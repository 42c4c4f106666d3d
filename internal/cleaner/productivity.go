package cleaner

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"rwanalytics/internal/dataset"
)

// WorkTypeOrder is the fixed ordering of the work-setting categories used
// for grouped output across the whole pipeline.
var WorkTypeOrder = []string{"Remote", "Hybrid", "Onsite"}

// remoteFrequencyLabels maps the surveyed remote-work frequency
// percentages onto readable work-setting labels. Frequencies of 25 and
// 75 are excluded from the analysis.
var remoteFrequencyLabels = map[float64]string{
	100: "Remote",
	50:  "Hybrid",
	0:   "Onsite",
}

// CleanProductivity runs the fixed cleaning pass over the raw employee
// performance dataset:
//
//   - drops identifier and sizing columns irrelevant to the hypothesis
//   - keeps only the IT department with remote frequency 0, 50 or 100
//   - resolves missing values (mean for numerics, mode for categoricals,
//     rows missing the grouping columns are dropped)
//   - relabels remote frequency as work_type (Remote/Hybrid/Onsite)
//   - derives motivation_score from satisfaction, performance and the
//     1-5 normalized promotions and training hours
//   - lowercases all column names
func CleanProductivity(ds *dataset.Dataset, logger *slog.Logger) (*dataset.Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := ds.RequireColumns(
		"Department",
		"Remote_Work_Frequency",
		"Promotions",
		"Training_Hours",
		"Employee_Satisfaction_Score",
		"Performance_Score",
	); err != nil {
		return nil, err
	}

	rawRows := ds.NumRows()
	out := ds.DropColumns("Employee_ID", "Hire_Date", "Team_Size")

	out = out.Filter(func(r dataset.Record) bool {
		if r.Get("Department") != "IT" {
			return false
		}
		freq, ok := r.Float("Remote_Work_Frequency")
		if !ok {
			return false
		}
		_, known := remoteFrequencyLabels[freq]
		return known
	})
	logger.Info("filtered productivity rows",
		slog.Int("raw_rows", rawRows),
		slog.Int("kept_rows", out.NumRows()))

	out, err := ResolveMissing(out, []string{"Department", "Remote_Work_Frequency"}, logger)
	if err != nil {
		return nil, fmt.Errorf("resolve missing values: %w", err)
	}

	out, err = relabelWorkType(out)
	if err != nil {
		return nil, err
	}

	out, err = addMotivationScore(out)
	if err != nil {
		return nil, fmt.Errorf("derive motivation score: %w", err)
	}

	out = out.LowercaseColumns()
	out, err = out.RenameColumn("remote_work_frequency", "work_type")
	if err != nil {
		return nil, err
	}

	logger.Info("productivity dataset cleaned",
		slog.Int("rows", out.NumRows()),
		slog.Int("columns", len(out.Columns())))

	return out, nil
}

// relabelWorkType replaces remote frequency percentages with their
// category labels and reclassifies the column as categorical.
func relabelWorkType(ds *dataset.Dataset) (*dataset.Dataset, error) {
	cells, err := ds.Strings("Remote_Work_Frequency")
	if err != nil {
		return nil, err
	}

	for i, cell := range cells {
		freq, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric remote frequency %q in row %d", cell, i+1)
		}
		label, ok := remoteFrequencyLabels[freq]
		if !ok {
			return nil, fmt.Errorf("unexpected remote frequency %v in row %d", freq, i+1)
		}
		cells[i] = label
	}

	out, err := ds.SetColumn("Remote_Work_Frequency", cells)
	if err != nil {
		return nil, err
	}
	return out.SetColumnKind("Remote_Work_Frequency", dataset.Categorical)
}

// addMotivationScore derives a 1-5 motivation score as the average of the
// satisfaction score, performance score, and promotions and training
// hours normalized onto a 1-5 scale.
func addMotivationScore(ds *dataset.Dataset) (*dataset.Dataset, error) {
	satisfaction, _, err := ds.Floats("Employee_Satisfaction_Score")
	if err != nil {
		return nil, err
	}
	performance, _, err := ds.Floats("Performance_Score")
	if err != nil {
		return nil, err
	}
	promotions, err := normalizeToScale(ds, "Promotions")
	if err != nil {
		return nil, err
	}
	training, err := normalizeToScale(ds, "Training_Hours")
	if err != nil {
		return nil, err
	}

	scores := make([]string, ds.NumRows())
	for i := range scores {
		score := (satisfaction[i] + performance[i] + promotions[i] + training[i]) / 4
		score = math.Round(score*100) / 100
		scores[i] = strconv.FormatFloat(score, 'f', 2, 64)
	}

	return ds.AddColumn(dataset.Column{Name: "Motivation_Score", Kind: dataset.Numeric}, scores)
}

// normalizeToScale maps a numeric column onto a 1-5 range by dividing
// through the column maximum. A column with max 0 maps to the scale floor.
func normalizeToScale(ds *dataset.Dataset, name string) ([]float64, error) {
	values, valid, err := ds.Floats(name)
	if err != nil {
		return nil, err
	}

	var max float64
	for i, ok := range valid {
		if ok && values[i] > max {
			max = values[i]
		}
	}

	normalized := make([]float64, len(values))
	for i := range values {
		if max == 0 {
			normalized[i] = 1
			continue
		}
		normalized[i] = values[i]/max*4 + 1
	}
	return normalized, nil
}
