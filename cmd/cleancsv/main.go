package main

import (
	"flag"
	"log/slog"
	"os"

	"rwanalytics/internal/cleaner"
	"rwanalytics/internal/config"
	"rwanalytics/internal/dataset"
	"rwanalytics/internal/report"
)

// cleancsv runs the cleaning passes only and writes the cleaned CSVs,
// for inspecting intermediate data without generating the full report.
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

	jobs := []struct {
		name  string
		path  string
		out   string
		clean func(*dataset.Dataset, *slog.Logger) (*dataset.Dataset, error)
	}{
		{"productivity", cfg.Input.ProductivityCSV, cfg.Output.ProductivityCleanCSV, cleaner.CleanProductivity},
		{"mental_health", cfg.Input.MentalHealthCSV, cfg.Output.MentalHealthCleanCSV, cleaner.CleanMentalHealth},
	}

	for _, job := range jobs {
		raw, err := dataset.LoadCSV(job.path, job.name)
		if err != nil {
			logger.Error("Failed to load dataset", "dataset", job.name, "error", err)
			os.Exit(1)
		}

		cleaned, err := job.clean(raw, logger)
		if err != nil {
			logger.Error("Failed to clean dataset", "dataset", job.name, "error", err)
			os.Exit(1)
		}
		if err := cleaner.VerifyClean(raw, cleaned); err != nil {
			logger.Error("Cleaning invariant violated", "dataset", job.name, "error", err)
			os.Exit(1)
		}

		if err := report.WriteDatasetCSV(cfg.CleanCSVPath(job.out), cleaned, logger); err != nil {
			logger.Error("Failed to write cleaned CSV", "dataset", job.name, "error", err)
			os.Exit(1)
		}
	}

	logger.Info("cleaning complete", slog.String("output_dir", cfg.Output.Dir))
}
