package metrics

import coremetrics "github.com/schedlab/rtfeas/core/metrics"

// MultiSink fans analysis events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordAnalysis forwards the events to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordAnalysis(events []coremetrics.AnalysisEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordAnalysis(events); err != nil {
			return err
		}
	}
	return nil
}
