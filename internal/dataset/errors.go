package dataset

import "fmt"

// LoadError reports a dataset file that is missing, unreadable, or malformed.
// A LoadError is fatal for the run; there are no retries.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *LoadError) Unwrap() error {
	return e.Err
}

// SchemaError reports an expected column missing from a dataset
type SchemaError struct {
	Dataset string
	Column  string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s: required column %q not found", e.Dataset, e.Column)
}
