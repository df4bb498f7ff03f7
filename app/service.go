package app

import (
	"context"
	"fmt"

	"github.com/schedlab/rtfeas/config"
	coremetrics "github.com/schedlab/rtfeas/core/metrics"
	"github.com/schedlab/rtfeas/infra/logger"
	"github.com/schedlab/rtfeas/infra/metrics"
	"github.com/schedlab/rtfeas/infra/mqtt"
)

// Service runs the feasibility responder with its metric sinks.
type Service struct {
	responder   *mqtt.Responder
	log         logger.Logger
	promEnabled bool
	promAddr    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	responder, err := mqtt.NewResponder(cfg.MQTT, sink, logg)
	if err != nil {
		return nil, fmt.Errorf("mqtt responder: %w", err)
	}

	return &Service{
		responder:   responder,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promAddr:    cfg.Metrics.PrometheusAddr,
	}, nil
}

// Run blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	s.log.Infof("feasibility responder running")
	<-ctx.Done()
	return nil
}

// Close disconnects the responder.
func (s *Service) Close() error {
	s.responder.Close()
	return nil
}
