package cleaner

import (
	"fmt"
	"log/slog"

	"rwanalytics/internal/dataset"
)

// techRoles are the job roles kept for the mental-health analysis
var techRoles = map[string]bool{
	"Data Scientist":    true,
	"Software Engineer": true,
	"Project Manager":   true,
}

// RatingGradeOrder is the fixed ordering of derived rating grades and of
// the surveyed stress levels, used for grouped output.
var RatingGradeOrder = []string{"Low", "Medium", "High"}

// CleanMentalHealth runs the fixed cleaning pass over the raw remote-work
// mental-health survey:
//
//   - lowercases all column names
//   - derives Low/Medium/High grade columns for company support, social
//     isolation and work-life balance ratings
//   - drops identifier and out-of-scope wellness columns
//   - renames work_location to work_type
//   - keeps only tech roles (Data Scientist, Software Engineer,
//     Project Manager)
//   - resolves missing values with the fixed per-column policy
func CleanMentalHealth(ds *dataset.Dataset, logger *slog.Logger) (*dataset.Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	out := ds.LowercaseColumns()

	if err := out.RequireColumns(
		"work_location",
		"job_role",
		"company_support_for_remote_work",
		"social_isolation_rating",
		"work_life_balance_rating",
	); err != nil {
		return nil, err
	}

	rawRows := out.NumRows()

	out, err := addRatingGrade(out, "company_support_for_remote_work", "degree_of_remote_support")
	if err != nil {
		return nil, err
	}
	out, err = addRatingGrade(out, "social_isolation_rating", "degree_of_social_isolation")
	if err != nil {
		return nil, err
	}
	out, err = addRatingGrade(out, "work_life_balance_rating", "degree_of_work_life_balance")
	if err != nil {
		return nil, err
	}

	out = out.DropColumns(
		"employee_id",
		"industry",
		"mental_health_condition",
		"access_to_mental_health_resources",
		"physical_activity",
		"sleep_quality",
		"region",
	)

	out, err = out.RenameColumn("work_location", "work_type")
	if err != nil {
		return nil, err
	}

	out = out.Filter(func(r dataset.Record) bool {
		return techRoles[r.Get("job_role")]
	})
	logger.Info("filtered mental-health rows",
		slog.Int("raw_rows", rawRows),
		slog.Int("kept_rows", out.NumRows()))

	out, err = ResolveMissing(out, []string{"work_type", "job_role"}, logger)
	if err != nil {
		return nil, fmt.Errorf("resolve missing values: %w", err)
	}

	logger.Info("mental-health dataset cleaned",
		slog.Int("rows", out.NumRows()),
		slog.Int("columns", len(out.Columns())))

	return out, nil
}

// addRatingGrade derives a Low/Medium/High grade column from a 1-5
// rating column. Ratings of 1-2 grade Low, 3 Medium, 4-5 High; missing
// ratings stay missing and are resolved by the imputation pass.
func addRatingGrade(ds *dataset.Dataset, ratingCol, gradeCol string) (*dataset.Dataset, error) {
	values, valid, err := ds.Floats(ratingCol)
	if err != nil {
		return nil, err
	}

	grades := make([]string, len(values))
	for i := range values {
		if !valid[i] {
			continue
		}
		switch {
		case values[i] <= 2:
			grades[i] = "Low"
		case values[i] == 3:
			grades[i] = "Medium"
		default:
			grades[i] = "High"
		}
	}

	out, err := ds.AddColumn(dataset.Column{Name: gradeCol, Kind: dataset.Categorical}, grades)
	if err != nil {
		return nil, fmt.Errorf("add grade column %s: %w", gradeCol, err)
	}
	return out, nil
}

// VerifyClean checks the cleaned-dataset invariants: no missing cell
// remains and the row count did not grow relative to the raw dataset.
func VerifyClean(raw, cleaned *dataset.Dataset) error {
	if cleaned.NumRows() > raw.NumRows() {
		return fmt.Errorf("cleaned dataset %s has %d rows, raw had %d",
			cleaned.Name, cleaned.NumRows(), raw.NumRows())
	}
	for _, col := range cleaned.Columns() {
		missing, err := cleaned.MissingCount(col.Name)
		if err != nil {
			return err
		}
		if missing > 0 {
			return fmt.Errorf("cleaned dataset %s: column %s retains %d missing values",
				cleaned.Name, col.Name, missing)
		}
	}
	return nil
}
