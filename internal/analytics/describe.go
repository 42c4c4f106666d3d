package analytics

import (
	"fmt"

	"rwanalytics/internal/dataset"
)

// DescribeRow holds the descriptive statistics of one numeric column
// within one group.
type DescribeRow struct {
	Group  string
	Column string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}

// Describe computes descriptive statistics for every numeric column of
// the dataset, grouped by the given categorical column. Rows come back
// ordered by group (per the given order) then by column schema order.
func Describe(ds *dataset.Dataset, groupCol string, order []string) ([]DescribeRow, error) {
	if err := ds.RequireColumns(groupCol); err != nil {
		return nil, err
	}

	numeric := ds.NumericColumns()
	if len(numeric) == 0 {
		return nil, fmt.Errorf("dataset %s has no numeric columns", ds.Name)
	}

	perColumn := make(map[string]map[string][]float64, len(numeric))
	observed := make(map[string]bool)
	for _, col := range numeric {
		grouped, err := groupValues(ds, groupCol, col)
		if err != nil {
			return nil, err
		}
		perColumn[col] = grouped
		for group := range grouped {
			observed[group] = true
		}
	}

	var rows []DescribeRow
	for _, group := range orderGroups(observed, order) {
		for _, col := range numeric {
			values := perColumn[col][group]
			if len(values) == 0 {
				continue
			}
			rows = append(rows, DescribeRow{
				Group:  group,
				Column: col,
				Count:  len(values),
				Mean:   mean(values),
				StdDev: stdDev(values),
				Min:    percentile(values, 0),
				P25:    percentile(values, 25),
				Median: median(values),
				P75:    percentile(values, 75),
				Max:    percentile(values, 100),
			})
		}
	}

	return rows, nil
}

// PivotRow holds the mean and median of each pivoted column for one group
type PivotRow struct {
	Group  string
	Mean   map[string]float64
	Median map[string]float64
}

// PivotMeanMedian builds a pivot table of mean and median per group for
// the requested numeric columns.
func PivotMeanMedian(ds *dataset.Dataset, groupCol string, order []string, valueCols ...string) ([]PivotRow, error) {
	if err := ds.RequireColumns(append([]string{groupCol}, valueCols...)...); err != nil {
		return nil, err
	}

	perColumn := make(map[string]map[string][]float64, len(valueCols))
	observed := make(map[string]bool)
	for _, col := range valueCols {
		grouped, err := groupValues(ds, groupCol, col)
		if err != nil {
			return nil, err
		}
		perColumn[col] = grouped
		for group := range grouped {
			observed[group] = true
		}
	}

	var rows []PivotRow
	for _, group := range orderGroups(observed, order) {
		row := PivotRow{
			Group:  group,
			Mean:   make(map[string]float64, len(valueCols)),
			Median: make(map[string]float64, len(valueCols)),
		}
		for _, col := range valueCols {
			values := perColumn[col][group]
			if len(values) == 0 {
				continue
			}
			row.Mean[col] = mean(values)
			row.Median[col] = median(values)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// CrossTab is a row-normalized percentage cross-tabulation of two
// categorical columns. Percent[i][j] is the share of row category i that
// falls into column category j; each row's Total sums to ~100.
type CrossTab struct {
	RowColumn string
	ColColumn string
	RowLabels []string
	ColLabels []string
	Percent   [][]float64
	Totals    []float64
}

// CrossTabPercent cross-tabulates two categorical columns, normalizing
// each row to percentages rounded to two decimals.
func CrossTabPercent(ds *dataset.Dataset, rowCol, colCol string, rowOrder, colOrder []string) (*CrossTab, error) {
	if err := ds.RequireColumns(rowCol, colCol); err != nil {
		return nil, err
	}

	rowCells, err := ds.Strings(rowCol)
	if err != nil {
		return nil, err
	}
	colCells, err := ds.Strings(colCol)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]map[string]int)
	rowTotals := make(map[string]int)
	colObserved := make(map[string]bool)
	for r := range rowCells {
		if rowCells[r] == "" || colCells[r] == "" {
			continue
		}
		if counts[rowCells[r]] == nil {
			counts[rowCells[r]] = make(map[string]int)
		}
		counts[rowCells[r]][colCells[r]]++
		rowTotals[rowCells[r]]++
		colObserved[colCells[r]] = true
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no rows with both %s and %s present", rowCol, colCol)
	}

	ct := &CrossTab{
		RowColumn: rowCol,
		ColColumn: colCol,
		RowLabels: orderGroups(counts, rowOrder),
		ColLabels: orderGroups(colObserved, colOrder),
	}

	for _, rowLabel := range ct.RowLabels {
		percents := make([]float64, len(ct.ColLabels))
		var total float64
		for j, colLabel := range ct.ColLabels {
			share := float64(counts[rowLabel][colLabel]) / float64(rowTotals[rowLabel]) * 100
			percents[j] = round2(share)
			total += percents[j]
		}
		ct.Percent = append(ct.Percent, percents)
		ct.Totals = append(ct.Totals, round2(total))
	}

	return ct, nil
}
