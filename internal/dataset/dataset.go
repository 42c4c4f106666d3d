package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies the values a column holds
type Kind int

const (
	// Categorical columns hold values drawn from a fixed label set
	Categorical Kind = iota
	// Numeric columns hold values parseable as float64
	Numeric
)

// String returns a human-readable kind name
func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "categorical"
}

// Column describes one named field of a dataset
type Column struct {
	Name string
	Kind Kind
}

// Dataset is an ordered collection of rows sharing a schema.
// Missing values are stored as the empty string; every transformation
// returns a new Dataset and leaves the receiver untouched.
type Dataset struct {
	Name  string
	cols  []Column
	index map[string]int
	rows  [][]string
}

// New creates an empty dataset with the given schema
func New(name string, cols []Column) *Dataset {
	ds := &Dataset{
		Name:  name,
		cols:  append([]Column(nil), cols...),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range ds.cols {
		ds.index[c.Name] = i
	}
	return ds
}

// AppendRow adds one row of raw cells. Returns an error when the cell
// count does not match the schema.
func (d *Dataset) AppendRow(cells []string) error {
	if len(cells) != len(d.cols) {
		return fmt.Errorf("row has %d cells, schema has %d columns", len(cells), len(d.cols))
	}
	d.rows = append(d.rows, append([]string(nil), cells...))
	return nil
}

// NumRows returns the number of rows
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// Columns returns a copy of the column schema
func (d *Dataset) Columns() []Column {
	return append([]Column(nil), d.cols...)
}

// ColumnNames returns the column names in schema order
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether the column exists
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// ColumnKind returns the kind of the named column
func (d *Dataset) ColumnKind(name string) (Kind, error) {
	i, ok := d.index[name]
	if !ok {
		return Categorical, &SchemaError{Dataset: d.Name, Column: name}
	}
	return d.cols[i].Kind, nil
}

// NumericColumns returns the names of all numeric columns in schema order
func (d *Dataset) NumericColumns() []string {
	var names []string
	for _, c := range d.cols {
		if c.Kind == Numeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// RequireColumns returns a SchemaError for the first missing column
func (d *Dataset) RequireColumns(names ...string) error {
	for _, name := range names {
		if !d.HasColumn(name) {
			return &SchemaError{Dataset: d.Name, Column: name}
		}
	}
	return nil
}

// Value returns the raw cell at the given row for the named column.
// Missing values come back as the empty string.
func (d *Dataset) Value(row int, name string) (string, error) {
	i, ok := d.index[name]
	if !ok {
		return "", &SchemaError{Dataset: d.Name, Column: name}
	}
	if row < 0 || row >= len(d.rows) {
		return "", fmt.Errorf("row %d out of range (%d rows)", row, len(d.rows))
	}
	return d.rows[row][i], nil
}

// Strings returns all cells of the named column
func (d *Dataset) Strings(name string) ([]string, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, &SchemaError{Dataset: d.Name, Column: name}
	}
	values := make([]string, len(d.rows))
	for r, row := range d.rows {
		values[r] = row[i]
	}
	return values, nil
}

// Floats returns the parsed values of a numeric column together with a
// validity mask. Missing or unparseable cells have ok=false.
func (d *Dataset) Floats(name string) ([]float64, []bool, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, nil, &SchemaError{Dataset: d.Name, Column: name}
	}
	values := make([]float64, len(d.rows))
	valid := make([]bool, len(d.rows))
	for r, row := range d.rows {
		if row[i] == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			continue
		}
		values[r] = v
		valid[r] = true
	}
	return values, valid, nil
}

// MissingCount returns the number of missing cells in the named column
func (d *Dataset) MissingCount(name string) (int, error) {
	i, ok := d.index[name]
	if !ok {
		return 0, &SchemaError{Dataset: d.Name, Column: name}
	}
	count := 0
	for _, row := range d.rows {
		if row[i] == "" {
			count++
		}
	}
	return count, nil
}

// Record is a read-only view of one row
type Record struct {
	ds  *Dataset
	row int
}

// Row returns the record at the given index
func (d *Dataset) Row(row int) Record {
	return Record{ds: d, row: row}
}

// Get returns the raw cell for the named column, empty when missing
func (r Record) Get(name string) string {
	v, _ := r.ds.Value(r.row, name)
	return v
}

// Float parses the cell as a number; ok is false for missing or
// non-numeric cells.
func (r Record) Float(name string) (float64, bool) {
	v := r.Get(name)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Filter returns a new dataset keeping only rows the predicate accepts
func (d *Dataset) Filter(keep func(Record) bool) *Dataset {
	out := New(d.Name, d.cols)
	for r := range d.rows {
		if keep(Record{ds: d, row: r}) {
			out.rows = append(out.rows, append([]string(nil), d.rows[r]...))
		}
	}
	return out
}

// DropColumns returns a new dataset without the named columns.
// Unknown names are ignored, matching a cleaning pass that tolerates
// already-absent columns.
func (d *Dataset) DropColumns(names ...string) *Dataset {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	var kept []Column
	var keptIdx []int
	for i, c := range d.cols {
		if !drop[c.Name] {
			kept = append(kept, c)
			keptIdx = append(keptIdx, i)
		}
	}

	out := New(d.Name, kept)
	for _, row := range d.rows {
		cells := make([]string, len(keptIdx))
		for j, i := range keptIdx {
			cells[j] = row[i]
		}
		out.rows = append(out.rows, cells)
	}
	return out
}

// RenameColumn returns a new dataset with one column renamed
func (d *Dataset) RenameColumn(from, to string) (*Dataset, error) {
	i, ok := d.index[from]
	if !ok {
		return nil, &SchemaError{Dataset: d.Name, Column: from}
	}
	cols := append([]Column(nil), d.cols...)
	cols[i].Name = to

	out := New(d.Name, cols)
	for _, row := range d.rows {
		out.rows = append(out.rows, append([]string(nil), row...))
	}
	return out, nil
}

// LowercaseColumns returns a new dataset with every column name lowercased
func (d *Dataset) LowercaseColumns() *Dataset {
	cols := append([]Column(nil), d.cols...)
	for i := range cols {
		cols[i].Name = strings.ToLower(cols[i].Name)
	}
	out := New(d.Name, cols)
	for _, row := range d.rows {
		out.rows = append(out.rows, append([]string(nil), row...))
	}
	return out
}

// AddColumn returns a new dataset with an extra column appended.
// The values slice must match the row count.
func (d *Dataset) AddColumn(col Column, values []string) (*Dataset, error) {
	if len(values) != len(d.rows) {
		return nil, fmt.Errorf("column %s has %d values for %d rows", col.Name, len(values), len(d.rows))
	}
	if d.HasColumn(col.Name) {
		return nil, fmt.Errorf("column %s already exists", col.Name)
	}

	out := New(d.Name, append(append([]Column(nil), d.cols...), col))
	for r, row := range d.rows {
		out.rows = append(out.rows, append(append([]string(nil), row...), values[r]))
	}
	return out, nil
}

// SetColumn returns a new dataset with the named column's cells replaced
func (d *Dataset) SetColumn(name string, values []string) (*Dataset, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, &SchemaError{Dataset: d.Name, Column: name}
	}
	if len(values) != len(d.rows) {
		return nil, fmt.Errorf("column %s has %d values for %d rows", name, len(values), len(d.rows))
	}

	out := New(d.Name, d.cols)
	for r, row := range d.rows {
		cells := append([]string(nil), row...)
		cells[i] = values[r]
		out.rows = append(out.rows, cells)
	}
	return out, nil
}

// SetColumnKind returns a new dataset with the named column reclassified
func (d *Dataset) SetColumnKind(name string, kind Kind) (*Dataset, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, &SchemaError{Dataset: d.Name, Column: name}
	}
	cols := append([]Column(nil), d.cols...)
	cols[i].Kind = kind

	out := New(d.Name, cols)
	for _, row := range d.rows {
		out.rows = append(out.rows, append([]string(nil), row...))
	}
	return out, nil
}

// Rows returns the raw cell matrix in row order. The result is a copy.
func (d *Dataset) Rows() [][]string {
	rows := make([][]string, len(d.rows))
	for r, row := range d.rows {
		rows[r] = append([]string(nil), row...)
	}
	return rows
}
