package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
input:
  productivity_csv: data/productivity.csv
  mental_health_csv: data/mental_health.csv
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/productivity.csv", cfg.Input.ProductivityCSV)
	assert.Equal(t, "data/mental_health.csv", cfg.Input.MentalHealthCSV)

	// Unset fields keep their defaults
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "remote_work_report.xlsx", cfg.Output.Workbook)
	assert.Equal(t, "summary.txt", cfg.Output.Summary)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
input:
  productivity_csv: in/a.csv
  mental_health_csv: in/b.csv
output:
  dir: results
  workbook: report.xlsx
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "results", cfg.Output.Dir)
	assert.Equal(t, "report.xlsx", cfg.Output.Workbook)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingInputsFailValidation(t *testing.T) {
	path := writeConfigFile(t, `
output:
  dir: results
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	path := writeConfigFile(t, `
input:
  productivity_csv: a.csv
  mental_health_csv: b.csv
logging:
  level: loud
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Level")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "input: [not: valid\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestPathHelpers(t *testing.T) {
	cfg := &Config{}
	cfg.Output.Dir = "out"
	cfg.Output.Workbook = "report.xlsx"
	cfg.Output.Summary = "summary.txt"

	assert.Equal(t, filepath.Join("out", "report.xlsx"), cfg.WorkbookPath())
	assert.Equal(t, filepath.Join("out", "summary.txt"), cfg.SummaryPath())
	assert.Equal(t, filepath.Join("out", "clean.csv"), cfg.CleanCSVPath("clean.csv"))
}

func TestEnsureOutputDir(t *testing.T) {
	cfg := &Config{}
	cfg.Output.Dir = filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, cfg.EnsureOutputDir())
	info, err := os.Stat(cfg.Output.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewLogger(t *testing.T) {
	for _, tt := range []struct{ level, format string }{
		{"debug", "text"},
		{"info", "json"},
		{"warn", "text"},
		{"error", "json"},
	} {
		cfg := &Config{}
		cfg.Logging.Level = tt.level
		cfg.Logging.Format = tt.format
		assert.NotNil(t, cfg.NewLogger())
	}
}
