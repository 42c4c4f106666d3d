package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// missingSentinels are the raw cell values treated as missing, compared
// case-insensitively after trimming.
var missingSentinels = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"null": true,
	"none": true,
	"nan":  true,
}

// LoadCSV reads a delimited file into a Dataset with inferred column kinds.
// The first row is the header. A UTF-8 BOM is stripped if present. Missing
// value sentinels are normalized to the empty string. Any failure is
// reported as a *LoadError.
func LoadCSV(path, name string) (*Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	// Strip UTF-8 BOM so the first header cell matches cleanly
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("parse CSV: %w", err)}
	}

	if len(records) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("file is empty")}
	}
	if len(records) < 2 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("file contains only a header")}
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if header[i] == "" {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("empty header in column %d", i+1)}
		}
	}

	rows := make([][]string, 0, len(records)-1)
	for lineNum, record := range records[1:] {
		if len(record) != len(header) {
			return nil, &LoadError{Path: path, Err: fmt.Errorf(
				"row %d has %d columns, expected %d", lineNum+2, len(record), len(header))}
		}
		cells := make([]string, len(record))
		for i, cell := range record {
			cells[i] = normalizeCell(cell)
		}
		rows = append(rows, cells)
	}

	cols := inferColumns(header, rows)
	ds := New(name, cols)
	for _, cells := range rows {
		if err := ds.AppendRow(cells); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
	}

	slog.Info("loaded dataset",
		slog.String("name", name),
		slog.String("path", path),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", len(cols)))

	return ds, nil
}

// normalizeCell trims whitespace and maps missing-value sentinels to ""
func normalizeCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if missingSentinels[strings.ToLower(cell)] {
		return ""
	}
	return cell
}

// inferColumns classifies each column as numeric when every present cell
// parses as a number, categorical otherwise. Columns with no present
// values default to categorical.
func inferColumns(header []string, rows [][]string) []Column {
	cols := make([]Column, len(header))
	for i, name := range header {
		kind := Categorical
		present := 0
		numeric := 0
		for _, row := range rows {
			if row[i] == "" {
				continue
			}
			present++
			if _, err := strconv.ParseFloat(row[i], 64); err == nil {
				numeric++
			}
		}
		if present > 0 && numeric == present {
			kind = Numeric
		}
		cols[i] = Column{Name: name, Kind: kind}
	}
	return cols
}
