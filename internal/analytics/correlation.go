package analytics

import (
	"fmt"

	"rwanalytics/internal/dataset"
)

// CorrelationMatrix holds the pairwise Pearson correlations of the
// dataset's numeric columns. The matrix is symmetric with 1.0 on the
// diagonal.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// At returns the correlation between two columns by name
func (m *CorrelationMatrix) At(a, b string) (float64, error) {
	ai, bi := -1, -1
	for i, col := range m.Columns {
		if col == a {
			ai = i
		}
		if col == b {
			bi = i
		}
	}
	if ai == -1 {
		return 0, fmt.Errorf("column %s not in correlation matrix", a)
	}
	if bi == -1 {
		return 0, fmt.Errorf("column %s not in correlation matrix", b)
	}
	return m.Values[ai][bi], nil
}

// Correlation computes the pairwise Pearson correlation matrix across
// all numeric columns. Pairs are computed over rows where both values
// are present. The diagonal is exactly 1.0 and Values[i][j] equals
// Values[j][i] by construction.
func Correlation(ds *dataset.Dataset) (*CorrelationMatrix, error) {
	columns := ds.NumericColumns()
	if len(columns) < 2 {
		return nil, fmt.Errorf("dataset %s needs at least two numeric columns, has %d", ds.Name, len(columns))
	}

	values := make([][]float64, len(columns))
	valid := make([][]bool, len(columns))
	for i, col := range columns {
		v, ok, err := ds.Floats(col)
		if err != nil {
			return nil, err
		}
		values[i] = v
		valid[i] = ok
	}

	matrix := make([][]float64, len(columns))
	for i := range matrix {
		matrix[i] = make([]float64, len(columns))
		matrix[i][i] = 1.0
	}

	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			var x, y []float64
			for r := range values[i] {
				if valid[i][r] && valid[j][r] {
					x = append(x, values[i][r])
					y = append(y, values[j][r])
				}
			}
			r := pearson(x, y)
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	return &CorrelationMatrix{Columns: columns, Values: matrix}, nil
}
