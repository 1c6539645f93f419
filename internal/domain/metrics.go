package domain

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Safety labels are display constants tied to the prompt category, not verdicts.
const (
	SafetyLabelSafe          = "Safe"
	SafetyLabelRequireReview = "Requires Review"
)

// Metrics is derived from a completion result and the selected category.
type Metrics struct {
	ResponseLength int
	ResponseTimeMs int64
	SafetyLabel    string
	ModelName      string
}

// MetricRow is a single line of the metrics table.
type MetricRow struct {
	Metric string
	Value  string
}

// Rows returns the metrics in display order.
func (m Metrics) Rows() []MetricRow {
	return []MetricRow{
		{Metric: "Response Length", Value: humanize.Comma(int64(m.ResponseLength))},
		{Metric: "Response Time", Value: fmt.Sprintf("%s ms", humanize.Comma(m.ResponseTimeMs))},
		{Metric: "Safety Score", Value: m.SafetyLabel},
		{Metric: "Model", Value: m.ModelName},
	}
}
