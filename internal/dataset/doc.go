// Package dataset provides the tabular data model for the remote-work
// analysis pipeline and the CSV loader that builds it.
//
// A Dataset is an ordered collection of rows sharing a schema of named,
// kind-classified columns. Datasets are loaded once from delimited files
// and treated as immutable afterwards: every transformation (filtering,
// column drops, renames, imputation writes) returns a new Dataset.
//
// Missing values are normalized to the empty string at load time, so the
// rest of the pipeline only ever checks one sentinel. Column kinds are
// inferred from the data: a column is numeric when every present cell
// parses as a float, categorical otherwise.
//
// Load failures surface as *LoadError and absent required columns as
// *SchemaError; both halt the run, there is no retry or fallback.
package dataset
