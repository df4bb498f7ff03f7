package metrics

import (
	coremetrics "github.com/schedlab/rtfeas/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records analysis outcomes in Prometheus metrics.
type PromSink struct {
	verdicts    *prometheus.CounterVec
	utilization prometheus.Gauge
	taskCount   prometheus.Gauge
}

// NewPromSink registers analysis metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusAddr.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	verdicts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feasibility_verdicts_total",
		Help: "Total number of feasibility verdicts by test and outcome",
	}, []string{"test", "verdict"})
	utilization := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "taskset_utilization",
		Help: "Total utilization of the most recently analyzed task set",
	})
	taskCount := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "taskset_tasks",
		Help: "Number of tasks in the most recently analyzed task set",
	})

	if err := reg.Register(verdicts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			verdicts = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(utilization); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			utilization = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(taskCount); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			taskCount = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{verdicts: verdicts, utilization: utilization, taskCount: taskCount}, nil
}

// RecordAnalysis increments the verdict counter per event and tracks the
// latest task set shape.
func (s *PromSink) RecordAnalysis(events []coremetrics.AnalysisEvent) error {
	for _, ev := range events {
		s.verdicts.WithLabelValues(ev.Test, ev.Verdict.String()).Inc()
		s.utilization.Set(ev.Utilization)
		s.taskCount.Set(float64(ev.TaskCount))
	}
	return nil
}
