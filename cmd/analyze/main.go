package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"rwanalytics/internal/analytics"
	"rwanalytics/internal/cleaner"
	"rwanalytics/internal/config"
	"rwanalytics/internal/dataset"
	"rwanalytics/internal/report"
)

// Score and hours columns of the cleaned productivity dataset
var (
	scoreColumns = []string{"performance_score", "employee_satisfaction_score", "motivation_score"}
	hoursColumns = []string{"work_hours_per_week", "overtime_hours"}
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	outputDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if err := cfg.EnsureOutputDir(); err != nil {
		logger.Error("Failed to prepare output directory", "error", err)
		os.Exit(1)
	}

	runID := uuid.NewString()
	logger.Info("starting analysis run",
		slog.String("run_id", runID),
		slog.String("productivity_csv", cfg.Input.ProductivityCSV),
		slog.String("mental_health_csv", cfg.Input.MentalHealthCSV))

	// The two input files are independent; load them in parallel
	var rawProd, rawMH *dataset.Dataset
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		rawProd, err = dataset.LoadCSV(cfg.Input.ProductivityCSV, "productivity")
		return err
	})
	g.Go(func() error {
		var err error
		rawMH, err = dataset.LoadCSV(cfg.Input.MentalHealthCSV, "mental_health")
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load input datasets", "error", err)
		os.Exit(1)
	}

	prod, err := cleaner.CleanProductivity(rawProd, logger)
	if err != nil {
		logger.Error("Failed to clean productivity dataset", "error", err)
		os.Exit(1)
	}
	if err := cleaner.VerifyClean(rawProd, prod); err != nil {
		logger.Error("Productivity cleaning invariant violated", "error", err)
		os.Exit(1)
	}

	mh, err := cleaner.CleanMentalHealth(rawMH, logger)
	if err != nil {
		logger.Error("Failed to clean mental-health dataset", "error", err)
		os.Exit(1)
	}
	if err := cleaner.VerifyClean(rawMH, mh); err != nil {
		logger.Error("Mental-health cleaning invariant violated", "error", err)
		os.Exit(1)
	}

	if err := report.WriteDatasetCSV(cfg.CleanCSVPath(cfg.Output.ProductivityCleanCSV), prod, logger); err != nil {
		logger.Error("Failed to write cleaned productivity CSV", "error", err)
		os.Exit(1)
	}
	if err := report.WriteDatasetCSV(cfg.CleanCSVPath(cfg.Output.MentalHealthCleanCSV), mh, logger); err != nil {
		logger.Error("Failed to write cleaned mental-health CSV", "error", err)
		os.Exit(1)
	}

	findings, err := aggregate(runID, prod, mh, logger)
	if err != nil {
		logger.Error("Failed to compute aggregates", "error", err)
		os.Exit(1)
	}

	writer := report.NewWorkbookWriter(logger)
	if err := writer.Write(cfg.WorkbookPath(), findings); err != nil {
		logger.Error("Failed to write report workbook", "error", err)
		os.Exit(1)
	}

	if err := report.WriteSummary(cfg.SummaryPath(), findings, logger); err != nil {
		logger.Error("Failed to write summary report", "error", err)
		os.Exit(1)
	}

	logger.Info("analysis run complete",
		slog.String("run_id", runID),
		slog.String("workbook", cfg.WorkbookPath()),
		slog.String("summary", cfg.SummaryPath()))
}

// aggregate derives every finding the report consumes from the two
// cleaned datasets.
func aggregate(runID string, prod, mh *dataset.Dataset, logger *slog.Logger) (*report.Findings, error) {
	order := cleaner.WorkTypeOrder

	distribution, err := analytics.GroupMeans(prod, "work_type", order)
	if err != nil {
		return nil, err
	}
	hours, err := analytics.GroupMeans(prod, "work_type", order, hoursColumns...)
	if err != nil {
		return nil, err
	}
	scores, err := analytics.GroupMeans(prod, "work_type", order, scoreColumns...)
	if err != nil {
		return nil, err
	}
	pivot, err := analytics.PivotMeanMedian(prod, "work_type", order, scoreColumns...)
	if err != nil {
		return nil, err
	}
	corr, err := analytics.Correlation(prod)
	if err != nil {
		return nil, err
	}
	prodDescribe, err := analytics.Describe(prod, "work_type", order)
	if err != nil {
		return nil, err
	}

	satisfaction, err := analytics.GroupMeans(mh, "satisfaction_with_remote_work", nil,
		"company_support_for_remote_work", "social_isolation_rating")
	if err != nil {
		return nil, err
	}
	meetings, err := analytics.GroupMeans(mh, "work_type", order,
		"number_of_virtual_meetings", "hours_worked_per_week")
	if err != nil {
		return nil, err
	}
	stressByWorkType, err := analytics.CrossTabPercent(mh, "stress_level", "work_type",
		cleaner.RatingGradeOrder, order)
	if err != nil {
		return nil, err
	}
	stressByJobRole, err := analytics.CrossTabPercent(mh, "stress_level", "job_role",
		cleaner.RatingGradeOrder, nil)
	if err != nil {
		return nil, err
	}
	mhDescribe, err := analytics.Describe(mh, "work_type", order)
	if err != nil {
		return nil, err
	}

	comparison, err := analytics.AlignOnWorkType(prod, mh, order,
		scoreColumns,
		[]string{"hours_worked_per_week", "social_isolation_rating"})
	if err != nil {
		return nil, err
	}

	prodWarnings, err := analytics.QualityReport(prod, "work_type", order, logger)
	if err != nil {
		return nil, err
	}
	mhWarnings, err := analytics.QualityReport(mh, "work_type", order, logger)
	if err != nil {
		return nil, err
	}

	return &report.Findings{
		RunID:       runID,
		GeneratedAt: time.Now().Format(time.RFC3339),

		WorkTypeDistribution: distribution,
		HoursByWorkType:      hours,
		ScoresByWorkType:     scores,
		ScorePivot:           pivot,
		ProductivityCorr:     corr,
		ProductivityDescribe: prodDescribe,

		SatisfactionSupport:  satisfaction,
		MeetingsAndHours:     meetings,
		StressByWorkType:     stressByWorkType,
		StressByJobRole:      stressByJobRole,
		MentalHealthDescribe: mhDescribe,

		WorkTypeComparison: comparison,
		Warnings:           append(prodWarnings, mhWarnings...),
	}, nil
}
