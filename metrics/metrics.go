// SPDX-License-Identifier: MIT

// Package metrics records simulation outcomes. Recorder is the narrow hook
// the simulation pipeline calls; Prometheus is the exporter used by the
// service, Nop the default for library use.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder observes the outcome of one operation.
type Recorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// NetworkObserver is implemented by recorders that also track network size.
type NetworkObserver interface {
	ObserveNetwork(nodes, segments, warnings int)
}

// Nop discards everything.
type Nop struct{}

// Observe implements Recorder.
func (Nop) Observe(context.Context, string, bool, time.Duration) {}

// Namespace prefixes every exported metric name.
const Namespace = "hydronet"

// Prometheus exports run counts, run durations and the size of the last
// solved network.
type Prometheus struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	nodes    prometheus.Gauge
	segments prometheus.Gauge
	warnings prometheus.Counter
}

// NewPrometheus creates the collectors and registers them on reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Prometheus{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Operations by name and status.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Operation wall time.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"operation"}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "network_nodes",
			Help:      "Nodes in the last solved network.",
		}),
		segments: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "network_segments",
			Help:      "Valid segments in the last solved network.",
		}),
		warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "warnings_total",
			Help:      "Recoverable conditions reported by simulation runs.",
		}),
	}

	for _, c := range []prometheus.Collector{p.runs, p.duration, p.nodes, p.segments, p.warnings} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return p, nil
}

// Observe implements Recorder.
func (p *Prometheus) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	p.runs.WithLabelValues(operation, status).Inc()
	p.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveNetwork implements NetworkObserver.
func (p *Prometheus) ObserveNetwork(nodes, segments, warnings int) {
	p.nodes.Set(float64(nodes))
	p.segments.Set(float64(segments))
	p.warnings.Add(float64(warnings))
}

// Handler serves the metrics gathered by g in the Prometheus text format.
// A nil g means prometheus.DefaultGatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
