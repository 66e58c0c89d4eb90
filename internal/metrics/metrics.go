// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package metrics holds Prometheus metrics for intmap runs.
//
// Metrics live in a private registry so that --metrics-file dumps only
// intmap_* series, in the text exposition format node_exporter's textfile
// collector reads.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks map invocations.
type Metrics struct {
	registry *prometheus.Registry

	maps     prometheus.Counter
	failures prometheus.Counter
	elements prometheus.Counter
	duration prometheus.Histogram
}

// New creates and registers the intmap metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		maps:     prometheus.NewCounter(prometheus.CounterOpts{Name: "intmap_maps_total", Help: "Map invocations"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{Name: "intmap_map_failures_total", Help: "Map invocations rejected before the pass"}),
		elements: prometheus.NewCounter(prometheus.CounterOpts{Name: "intmap_elements_mapped_total", Help: "Elements transformed"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "intmap_map_seconds",
			Help:    "Duration of a map pass",
			Buckets: []float64{1e-6, 1e-5, 1e-4, 0.001, 0.01, 0.1, 1},
		}),
	}
	m.registry.MustRegister(m.maps, m.failures, m.elements, m.duration)
	return m
}

// Registry returns the registry holding the intmap metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveMap records one map call over n elements that took d. A failed call
// transforms nothing, so only the failure is counted.
func (m *Metrics) ObserveMap(n int, d time.Duration, err error) {
	m.maps.Inc()
	if err != nil {
		m.failures.Inc()
		return
	}
	m.elements.Add(float64(n))
	m.duration.Observe(d.Seconds())
}

// WriteFile writes the metrics to path in the Prometheus text format.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
