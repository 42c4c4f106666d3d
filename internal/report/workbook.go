package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"rwanalytics/internal/analytics"
)

// Sheet names of the generated workbook
const (
	sheetRunInfo       = "Run Info"
	sheetDistribution  = "Work Type Distribution"
	sheetHours         = "Work and Overtime Hours"
	sheetScores        = "Average Scores"
	sheetScorePivot    = "Score Pivot"
	sheetCorrelation   = "Correlation Heatmap"
	sheetSatisfaction  = "Satisfaction vs Support"
	sheetMeetingsHours = "Meetings and Hours"
	sheetStressWork    = "Stress x Work Type"
	sheetStressRole    = "Stress x Job Role"
	sheetComparison    = "Work Type Comparison"
	sheetProdDescribe  = "Productivity Describe"
	sheetMHDescribe    = "Mental Health Describe"
)

// WorkbookWriter renders the findings into a single XLSX report with
// charts and a correlation heatmap.
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// Write renders every findings sheet and saves the workbook
func (w *WorkbookWriter) Write(path string, findings *Findings) error {
	w.logger.Info("writing report workbook",
		slog.String("path", path),
		slog.String("run_id", findings.RunID))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetRunInfo); err != nil {
		return fmt.Errorf("rename default sheet: %w", err)
	}

	steps := []struct {
		name string
		fn   func(*excelize.File, *Findings) error
	}{
		{sheetRunInfo, w.writeRunInfo},
		{sheetDistribution, w.writeDistribution},
		{sheetHours, w.writeHours},
		{sheetScores, w.writeScores},
		{sheetScorePivot, w.writeScorePivot},
		{sheetCorrelation, w.writeCorrelation},
		{sheetSatisfaction, w.writeSatisfaction},
		{sheetMeetingsHours, w.writeMeetingsHours},
		{sheetStressWork, func(f *excelize.File, fd *Findings) error {
			return w.writeCrossTab(f, sheetStressWork, fd.StressByWorkType)
		}},
		{sheetStressRole, func(f *excelize.File, fd *Findings) error {
			return w.writeCrossTab(f, sheetStressRole, fd.StressByJobRole)
		}},
		{sheetComparison, w.writeComparison},
		{sheetProdDescribe, func(f *excelize.File, fd *Findings) error {
			return w.writeDescribe(f, sheetProdDescribe, fd.ProductivityDescribe)
		}},
		{sheetMHDescribe, func(f *excelize.File, fd *Findings) error {
			return w.writeDescribe(f, sheetMHDescribe, fd.MentalHealthDescribe)
		}},
	}

	for _, step := range steps {
		if err := step.fn(f, findings); err != nil {
			return fmt.Errorf("write sheet %s: %w", step.name, err)
		}
	}

	index, err := f.GetSheetIndex(sheetRunInfo)
	if err == nil && index >= 0 {
		f.SetActiveSheet(index)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	w.logger.Info("report workbook written", slog.String("path", path))
	return nil
}

// writeRunInfo writes run metadata and data-quality findings
func (w *WorkbookWriter) writeRunInfo(f *excelize.File, findings *Findings) error {
	rows := [][]interface{}{
		{"Remote Work Analysis Report"},
		{},
		{"Run ID", findings.RunID},
		{"Generated", findings.GeneratedAt},
		{},
		{"Data Quality Findings"},
	}
	if len(findings.Warnings) == 0 {
		rows = append(rows, []interface{}{"none"})
	}
	for _, warning := range findings.Warnings {
		rows = append(rows, []interface{}{warning.String()})
	}
	return writeRows(f, sheetRunInfo, 1, rows)
}

// writeDistribution writes work-type counts with a doughnut chart,
// mirroring the donut distribution chart of the study.
func (w *WorkbookWriter) writeDistribution(f *excelize.File, findings *Findings) error {
	if _, err := f.NewSheet(sheetDistribution); err != nil {
		return err
	}

	rows := [][]interface{}{{"Work Type", "Respondents"}}
	for _, g := range findings.WorkTypeDistribution {
		rows = append(rows, []interface{}{g.Group, g.Count})
	}
	if err := writeRows(f, sheetDistribution, 1, rows); err != nil {
		return err
	}

	n := len(findings.WorkTypeDistribution)
	if n == 0 {
		return nil
	}
	return f.AddChart(sheetDistribution, "D2", &excelize.Chart{
		Type: excelize.Doughnut,
		Series: []excelize.ChartSeries{{
			Name:       quotedRef(sheetDistribution, "B", 1),
			Categories: rangeRef(sheetDistribution, "A", 2, n+1),
			Values:     rangeRef(sheetDistribution, "B", 2, n+1),
		}},
		Title:  []excelize.RichTextRun{{Text: "Distribution of Work Type"}},
		Legend: excelize.ChartLegend{Position: "right"},
	})
}

// writeHours writes average work and overtime hours per work type with a
// stacked column chart.
func (w *WorkbookWriter) writeHours(f *excelize.File, findings *Findings) error {
	if _, err := f.NewSheet(sheetHours); err != nil {
		return err
	}

	rows := [][]interface{}{{"Work Type", "Work Hours", "Overtime Hours"}}
	for _, g := range findings.HoursByWorkType {
		rows = append(rows, []interface{}{
			g.Group,
			g.Mean["work_hours_per_week"],
			g.Mean["overtime_hours"],
		})
	}
	if err := writeRows(f, sheetHours, 1, rows); err != nil {
		return err
	}

	n := len(findings.HoursByWorkType)
	if n == 0 {
		return nil
	}
	var series []excelize.ChartSeries
	for _, col := range []string{"B", "C"} {
		series = append(series, excelize.ChartSeries{
			Name:       quotedRef(sheetHours, col, 1),
			Categories: rangeRef(sheetHours, "A", 2, n+1),
			Values:     rangeRef(sheetHours, col, 2, n+1),
		})
	}
	return f.AddChart(sheetHours, "E2", &excelize.Chart{
		Type:   excelize.ColStacked,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: "Average Work and Overtime Hours by Work Type"}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	})
}

// writeScores writes average performance, satisfaction and motivation
// scores per work type with a clustered column chart.
func (w *WorkbookWriter) writeScores(f *excelize.File, findings *Findings) error {
	if _, err := f.NewSheet(sheetScores); err != nil {
		return err
	}

	rows := [][]interface{}{{"Work Type", "Performance", "Satisfaction", "Motivation"}}
	for _, g := range findings.ScoresByWorkType {
		rows = append(rows, []interface{}{
			g.Group,
			g.Mean["performance_score"],
			g.Mean["employee_satisfaction_score"],
			g.Mean["motivation_score"],
		})
	}
	if err := writeRows(f, sheetScores, 1, rows); err != nil {
		return err
	}

	n := len(findings.ScoresByWorkType)
	if n == 0 {
		return nil
	}
	var series []excelize.ChartSeries
	for _, col := range []string{"B", "C", "D"} {
		series = append(series, excelize.ChartSeries{
			Name:       quotedRef(sheetScores, col, 1),
			Categories: rangeRef(sheetScores, "A", 2, n+1),
			Values:     rangeRef(sheetScores, col, 2, n+1),
		})
	}
	return f.AddChart(sheetScores, "F2", &excelize.Chart{
		Type:   excelize.Col,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: "Average Scores by Work Type"}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	})
}

// writeScorePivot writes the mean/median pivot table of the score columns
func (w *WorkbookWriter) writeScorePivot(f *excelize.File, findings *Findings) error {
	if _, err := f.NewSheet(sheetScorePivot); err != nil {
		return err
	}

	columns := []string{"performance_score", "employee_satisfaction_score", "motivation_score"}
	header := []interface{}{"Work Type"}
	for _, col := range columns {
		header = append(header, "mean "+col)
	}
	for _, col := range columns {
		header = append(header, "median "+col)
	}

	rows := [][]interface{}{header}
	for _, pivot := range findings.ScorePivot {
		row := []interface{}{pivot.Group}
		for _, col := range columns {
			row = append(row, pivot.Mean[col])
		}
		for _, col := range columns {
			row = append(row, pivot.Median[col])
		}
		rows = append(rows, row)
	}
	return writeRows(f, sheetScorePivot, 1, rows)
}

// writeCorrelation writes the correlation matrix with a three-color
// scale, the spreadsheet analog of a heatmap.
func (w *WorkbookWriter) writeCorrelation(f *excelize.File, findings *Findings) error {
	if _, err := f.NewSheet(sheetCorrelation); err != nil {
		return err
	}

	matrix := findings.ProductivityCorr
	if matrix == nil {
		return nil
	}

	header := []interface{}{""}
	for _, col := range matrix.Columns {
		header = append(header, col)
	}
	rows := [][]interface{}{header}
	for i, col := range matrix.Columns {
		row := []interface{}{col}
		for _, v := range matrix.Values[i] {
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := writeRows(f, sheetCorrelation, 1, rows); err != nil {
		return err
	}

	n := len(matrix.Columns)
	lastCol, err := excelize.ColumnNumberToName(n + 1)
	if err != nil {
		return err
	}
	area := fmt.Sprintf("B2:%s%d", lastCol, n+1)
	return f.SetConditionalFormat(sheetCorrelation, area, []excelize.ConditionalFormatOptions{{
		Type:     "3_color_scale",
		Criteria: "=",
		MinType:  "num",
		MinValue: "-1",
		MinColor: "#5B8DB8",
		MidType:  "num",
		MidValue: "0",
		MidColor: "#FFFFFF",
		MaxType:  "num",
		MaxValue: "1",
		MaxColor: "#C0504D",
	}})
}

// writeSatisfaction writes company support and social isolation means
// grouped by satisfaction with remote work, with a bar chart.
func (w *WorkbookWriter) writeSatisfaction(f *excelize.File, findings *Findings) error {
	if _, err := f.NewSheet(sheetSatisfaction); err != nil {
		return err
	}

	rows := [][]interface{}{{"Satisfaction", "Company Support", "Social Isolation"}}
	for _, g := range findings.SatisfactionSupport {
		rows = append(rows, []interface{}{
			g.Group,
			g.Mean["company_support_for_remote_work"],
			g.Mean["social_isolation_rating"],
		})
	}
	if err := writeRows(f, sheetSatisfaction, 1, rows); err != nil {
		return err
	}

	n := len(findings.SatisfactionSupport)
	if n == 0 {
		return nil
	}
	var series []excelize.ChartSeries
	for _, col := range []string{"B", "C"} {
		series = append(series, excelize.ChartSeries{
			Name:       quotedRef(sheetSatisfaction, col, 1),
			Categories: rangeRef(sheetSatisfaction, "A", 2, n+1),
			Values:     rangeRef(sheetSatisfaction, col, 2, n+1),
		})
	}
	return f.AddChart(sheetSatisfaction, "E2", &excelize.Chart{
		Type:   excelize.Bar,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: "Support and Isolation by Satisfaction with Remote Work"}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	})
}

// writeMeetingsHours writes virtual meeting counts and weekly hours per
// work type for the mental-health dataset.
func (w *WorkbookWriter) writeMeetingsHours(f *excelize.File, findings *Findings) error {
	if _, err := f.NewSheet(sheetMeetingsHours); err != nil {
		return err
	}

	rows := [][]interface{}{{"Work Type", "Virtual Meetings", "Hours Worked per Week"}}
	for _, g := range findings.MeetingsAndHours {
		rows = append(rows, []interface{}{
			g.Group,
			g.Mean["number_of_virtual_meetings"],
			g.Mean["hours_worked_per_week"],
		})
	}
	return writeRows(f, sheetMeetingsHours, 1, rows)
}

// writeCrossTab writes one row-normalized percentage cross-tab
func (w *WorkbookWriter) writeCrossTab(f *excelize.File, sheet string, ct *analytics.CrossTab) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if ct == nil {
		return nil
	}

	header := []interface{}{ct.RowColumn + " \\ " + ct.ColColumn}
	for _, label := range ct.ColLabels {
		header = append(header, label)
	}
	header = append(header, "Total")

	rows := [][]interface{}{header}
	for i, label := range ct.RowLabels {
		row := []interface{}{label}
		for _, v := range ct.Percent[i] {
			row = append(row, v)
		}
		row = append(row, ct.Totals[i])
		rows = append(rows, row)
	}
	return writeRows(f, sheet, 1, rows)
}

// writeComparison writes the cross-dataset work-type alignment
func (w *WorkbookWriter) writeComparison(f *excelize.File, findings *Findings) error {
	if _, err := f.NewSheet(sheetComparison); err != nil {
		return err
	}

	rows := [][]interface{}{{
		"Work Type",
		"Productivity Respondents", "Motivation Score", "Performance Score",
		"Mental Health Respondents", "Hours Worked per Week", "Social Isolation",
	}}
	for _, ag := range findings.WorkTypeComparison {
		rows = append(rows, []interface{}{
			ag.Group,
			ag.LeftCount,
			ag.LeftMean["motivation_score"],
			ag.LeftMean["performance_score"],
			ag.RightCount,
			ag.RightMean["hours_worked_per_week"],
			ag.RightMean["social_isolation_rating"],
		})
	}
	return writeRows(f, sheetComparison, 1, rows)
}

// writeDescribe writes per-group descriptive statistics
func (w *WorkbookWriter) writeDescribe(f *excelize.File, sheet string, describe []analytics.DescribeRow) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{
		"Group", "Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max",
	}}
	for _, d := range describe {
		rows = append(rows, []interface{}{
			d.Group, d.Column, d.Count, d.Mean, d.StdDev, d.Min, d.P25, d.Median, d.P75, d.Max,
		})
	}
	return writeRows(f, sheet, 1, rows)
}

// writeRows writes a block of rows starting at the given row number
func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, startRow+r)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// rangeRef builds a single-column range reference like Sheet!$B$2:$B$5
func rangeRef(sheet, col string, fromRow, toRow int) string {
	return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", sheet, col, fromRow, col, toRow)
}

// quotedRef builds a single-cell reference like 'Sheet'!$B$1
func quotedRef(sheet, col string, row int) string {
	return fmt.Sprintf("'%s'!$%s$%d", sheet, col, row)
}
