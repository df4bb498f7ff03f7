package metrics

import (
	"time"

	"github.com/schedlab/rtfeas/core/model"
)

// AnalysisEvent represents one completed feasibility test to be recorded.
type AnalysisEvent struct {
	RequestID   string
	Test        string
	Verdict     model.Verdict
	Utilization float64
	Bound       float64
	TaskCount   int
	Time        time.Time
}

// MetricsSink records analysis outcomes for observability purposes.
type MetricsSink interface {
	RecordAnalysis(events []AnalysisEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordAnalysis([]AnalysisEvent) error { return nil }
