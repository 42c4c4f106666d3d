// Package report renders the analysis artifacts: an XLSX workbook with
// one sheet per finding (distribution doughnut, stacked hours chart,
// grouped score chart, pivot tables, cross-tabs and a color-scale
// correlation heatmap), cleaned-dataset CSV exports with a UTF-8 BOM for
// Excel, and a narrative text summary including the data-quality
// caveats. All artifacts are written for humans; nothing downstream
// consumes them.
package report
