package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig names the raw survey dataset files
type InputConfig struct {
	ProductivityCSV string `yaml:"productivity_csv" envconfig:"PRODUCTIVITY_CSV" validate:"required"`
	MentalHealthCSV string `yaml:"mental_health_csv" envconfig:"MENTAL_HEALTH_CSV" validate:"required"`
}

// OutputConfig contains output locations for generated artifacts
type OutputConfig struct {
	Dir                  string `yaml:"dir" envconfig:"DIR" default:"output"`
	ProductivityCleanCSV string `yaml:"productivity_clean_csv" envconfig:"PRODUCTIVITY_CLEAN_CSV" default:"productivity_cleaned.csv"`
	MentalHealthCleanCSV string `yaml:"mental_health_clean_csv" envconfig:"MENTAL_HEALTH_CLEAN_CSV" default:"mental_health_cleaned.csv"`
	Workbook             string `yaml:"workbook" envconfig:"WORKBOOK" default:"remote_work_report.xlsx"`
	Summary              string `yaml:"summary" envconfig:"SUMMARY" default:"summary.txt"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

// Load loads configuration from environment variables and the YAML file.
// Environment variables use the RWA prefix and supply defaults; non-empty
// values in the file override them.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("RWA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configPath != "" {
		fileCfg, err := loadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(cfg, *fileCfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays non-empty file values onto the base config
func mergeConfigs(base, file Config) Config {
	merged := base

	if file.Input.ProductivityCSV != "" {
		merged.Input.ProductivityCSV = file.Input.ProductivityCSV
	}
	if file.Input.MentalHealthCSV != "" {
		merged.Input.MentalHealthCSV = file.Input.MentalHealthCSV
	}
	if file.Output.Dir != "" {
		merged.Output.Dir = file.Output.Dir
	}
	if file.Output.ProductivityCleanCSV != "" {
		merged.Output.ProductivityCleanCSV = file.Output.ProductivityCleanCSV
	}
	if file.Output.MentalHealthCleanCSV != "" {
		merged.Output.MentalHealthCleanCSV = file.Output.MentalHealthCleanCSV
	}
	if file.Output.Workbook != "" {
		merged.Output.Workbook = file.Output.Workbook
	}
	if file.Output.Summary != "" {
		merged.Output.Summary = file.Output.Summary
	}
	if file.Logging.Level != "" {
		merged.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		merged.Logging.Format = file.Logging.Format
	}

	return merged
}

// validate checks the configuration using struct tags
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			fields := make([]string, 0, len(errs))
			for _, fe := range errs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// WorkbookPath returns the resolved path for the XLSX report
func (c *Config) WorkbookPath() string {
	return filepath.Join(c.Output.Dir, c.Output.Workbook)
}

// SummaryPath returns the resolved path for the narrative summary
func (c *Config) SummaryPath() string {
	return filepath.Join(c.Output.Dir, c.Output.Summary)
}

// CleanCSVPath returns the resolved path for a cleaned CSV file name
func (c *Config) CleanCSVPath(name string) string {
	return filepath.Join(c.Output.Dir, name)
}

// EnsureOutputDir creates the output directory if it does not exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// NewLogger builds a slog.Logger from the logging configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(c.Logging.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
