package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	coremetrics "github.com/schedlab/rtfeas/core/metrics"
)

type captureSink struct {
	events []coremetrics.AnalysisEvent
	err    error
}

func (c *captureSink) RecordAnalysis(events []coremetrics.AnalysisEvent) error {
	c.events = append(c.events, events...)
	return c.err
}

func TestMultiSinkFanout(t *testing.T) {
	a, b := &captureSink{}, &captureSink{}
	m := NewMultiSink(a, b)
	events := []coremetrics.AnalysisEvent{{Test: "response_time"}}
	assert.NoError(t, m.RecordAnalysis(events))
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}

func TestMultiSinkFirstError(t *testing.T) {
	boom := errors.New("boom")
	a := &captureSink{err: boom}
	b := &captureSink{}
	m := NewMultiSink(a, b)
	err := m.RecordAnalysis([]coremetrics.AnalysisEvent{{Test: "rm_utilization"}})
	assert.ErrorIs(t, err, boom)
	// The failing sink stops the fanout.
	assert.Empty(t, b.events)
}
