package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"rwanalytics/internal/analytics"
)

// WriteSummary writes the narrative text report: per-group findings,
// the cross-dataset comparison, and the data-quality caveats.
func WriteSummary(path string, findings *Findings, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("writing summary report", slog.String("path", path))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "Remote Work, Motivation and Productivity - Summary Report\n")
	fmt.Fprintf(file, "=========================================================\n\n")
	fmt.Fprintf(file, "Run ID: %s\n", findings.RunID)
	fmt.Fprintf(file, "Generated: %s\n\n", findings.GeneratedAt)

	fmt.Fprintf(file, "WORK TYPE DISTRIBUTION (productivity dataset)\n")
	fmt.Fprintf(file, "---------------------------------------------\n")
	total := 0
	for _, g := range findings.WorkTypeDistribution {
		total += g.Count
	}
	for _, g := range findings.WorkTypeDistribution {
		share := 0.0
		if total > 0 {
			share = float64(g.Count) / float64(total) * 100
		}
		fmt.Fprintf(file, "%-8s %6d respondents (%.1f%%)\n", g.Group, g.Count, share)
	}
	fmt.Fprintf(file, "\n")

	fmt.Fprintf(file, "AVERAGE SCORES BY WORK TYPE\n")
	fmt.Fprintf(file, "---------------------------\n")
	for _, g := range findings.ScoresByWorkType {
		fmt.Fprintf(file, "%-8s performance %.2f, satisfaction %.2f, motivation %.2f\n",
			g.Group,
			g.Mean["performance_score"],
			g.Mean["employee_satisfaction_score"],
			g.Mean["motivation_score"])
	}
	fmt.Fprintf(file, "\n")

	fmt.Fprintf(file, "AVERAGE HOURS BY WORK TYPE\n")
	fmt.Fprintf(file, "--------------------------\n")
	for _, g := range findings.HoursByWorkType {
		fmt.Fprintf(file, "%-8s work %.2f h/week, overtime %.2f h\n",
			g.Group,
			g.Mean["work_hours_per_week"],
			g.Mean["overtime_hours"])
	}
	fmt.Fprintf(file, "\n")

	fmt.Fprintf(file, "SATISFACTION WITH REMOTE WORK (mental-health dataset)\n")
	fmt.Fprintf(file, "-----------------------------------------------------\n")
	for _, g := range findings.SatisfactionSupport {
		fmt.Fprintf(file, "%-12s company support %.2f, social isolation %.2f\n",
			g.Group,
			g.Mean["company_support_for_remote_work"],
			g.Mean["social_isolation_rating"])
	}
	fmt.Fprintf(file, "\n")

	if findings.StressByWorkType != nil {
		fmt.Fprintf(file, "STRESS LEVEL BY WORK TYPE (row %%)\n")
		fmt.Fprintf(file, "---------------------------------\n")
		writeCrossTabText(file, findings.StressByWorkType)
		fmt.Fprintf(file, "\n")
	}

	fmt.Fprintf(file, "WORK TYPE COMPARISON ACROSS DATASETS\n")
	fmt.Fprintf(file, "------------------------------------\n")
	fmt.Fprintf(file, "The two surveys share no respondent key; groups are aligned on work type only.\n")
	for _, ag := range findings.WorkTypeComparison {
		fmt.Fprintf(file, "%-8s motivation %.2f (n=%d) | hours worked %.2f, isolation %.2f (n=%d)\n",
			ag.Group,
			ag.LeftMean["motivation_score"], ag.LeftCount,
			ag.RightMean["hours_worked_per_week"],
			ag.RightMean["social_isolation_rating"], ag.RightCount)
	}
	fmt.Fprintf(file, "\n")

	fmt.Fprintf(file, "DATA QUALITY CAVEATS\n")
	fmt.Fprintf(file, "--------------------\n")
	if len(findings.Warnings) == 0 {
		fmt.Fprintf(file, "No low-variance findings.\n")
	} else {
		fmt.Fprintf(file, "The findings below suggest the underlying datasets are synthetic or\n")
		fmt.Fprintf(file, "low-variance; group differences should be read as descriptive, not causal.\n\n")
		for _, warning := range findings.Warnings {
			fmt.Fprintf(file, "- %s\n", warning.String())
		}
	}

	return nil
}

// writeCrossTabText prints a cross-tab as fixed-width text
func writeCrossTabText(file *os.File, ct *analytics.CrossTab) {
	fmt.Fprintf(file, "%-10s", "")
	for _, label := range ct.ColLabels {
		fmt.Fprintf(file, "%10s", label)
	}
	fmt.Fprintf(file, "%10s\n", "Total")
	for i, label := range ct.RowLabels {
		fmt.Fprintf(file, "%-10s", label)
		for _, v := range ct.Percent[i] {
			fmt.Fprintf(file, "%10.2f", v)
		}
		fmt.Fprintf(file, "%10.2f\n", ct.Totals[i])
	}
}
