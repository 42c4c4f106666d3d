// Package analytics computes the aggregates the study reports on:
// grouped means and counts, per-group descriptive statistics, mean/median
// pivot tables, row-normalized cross-tabulations, and pairwise Pearson
// correlation matrices over the numeric columns of a cleaned dataset.
//
// The two survey datasets share no respondent key, so AlignOnWorkType is
// the only cross-dataset operation: it lines up per-group means on the
// shared work_type dimension.
//
// Every aggregate is purely derived from its input dataset and
// deterministic: group ordering is fixed (preferred category order first,
// remainder lexicographic), so identical inputs produce identical output.
// QualityReport flags low-variance columns as non-fatal findings rather
// than errors.
package analytics
