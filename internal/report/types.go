package report

import (
	"rwanalytics/internal/analytics"
)

// Findings bundles every aggregate the pipeline derives, in the shape
// the workbook and summary writers consume.
type Findings struct {
	RunID       string
	GeneratedAt string

	// Productivity dataset aggregates
	WorkTypeDistribution []analytics.GroupSummary
	HoursByWorkType      []analytics.GroupSummary
	ScoresByWorkType     []analytics.GroupSummary
	ScorePivot           []analytics.PivotRow
	ProductivityCorr     *analytics.CorrelationMatrix
	ProductivityDescribe []analytics.DescribeRow

	// Mental-health dataset aggregates
	SatisfactionSupport  []analytics.GroupSummary
	MeetingsAndHours     []analytics.GroupSummary
	StressByWorkType     *analytics.CrossTab
	StressByJobRole      *analytics.CrossTab
	MentalHealthDescribe []analytics.DescribeRow

	// Cross-dataset alignment on work_type
	WorkTypeComparison []analytics.AlignedGroup

	// Non-fatal data-quality findings
	Warnings []analytics.Warning
}
