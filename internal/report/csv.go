package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"rwanalytics/internal/dataset"
)

// WriteDatasetCSV writes a cleaned dataset to a CSV file, prefixed with
// a UTF-8 BOM so Excel recognizes the encoding.
func WriteDatasetCSV(path string, ds *dataset.Dataset, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("writing cleaned dataset CSV",
		slog.String("dataset", ds.Name),
		slog.String("path", path),
		slog.Int("rows", ds.NumRows()))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(ds.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range ds.Rows() {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}
