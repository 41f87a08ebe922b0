// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-metric-scraper/internal/config"
	"github.com/MKhiriev/go-metric-scraper/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the registry served on the scrape endpoint with the
// collectors registered on it.
type Metrics struct {
	Registry  *prometheus.Registry
	Collector *Collector

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

// NewMetrics loads the metric declaration named by cfg and registers the
// declared metrics together with the HTTP request metrics. A missing
// declaration file is logged and leaves the declared set empty.
func NewMetrics(cfg config.RuntimeConfiguration, log *logger.Logger) (*Metrics, error) {
	path := cfg.MetricsConfiguration.AbsolutePath

	var definitions []MetricDefinition
	decl, err := LoadDeclaration(path)
	switch {
	case errors.Is(err, ErrDeclarationNotFound):
		log.Warn().Str("path", path).Msg("metric declaration not found, no metrics are declared")
	case err != nil:
		return nil, err
	default:
		definitions = decl.Metrics
		log.Info().Str("path", path).Str("version", decl.Version).Int("metrics", len(definitions)).Msg("metric declaration loaded")
	}

	return newMetrics(cfg.Prometheus, definitions)
}

func newMetrics(settings config.PrometheusSettings, definitions []MetricDefinition) (*Metrics, error) {
	m := &Metrics{
		Registry:  prometheus.NewRegistry(),
		Collector: NewCollector(settings, definitions),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "scraper_http_requests_total", Help: "HTTP requests by route, method and status."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "scraper_http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"route", "method"},
		),
	}

	for _, c := range []prometheus.Collector{m.Collector, m.httpRequests, m.httpLatency} {
		if err := m.Registry.Register(c); err != nil {
			return nil, fmt.Errorf("error registering collector: %w", err)
		}
	}

	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveRequest records a served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(duration.Seconds())
}

// Report records a measured value for a declared metric.
func (m *Metrics) Report(name string, value float64) error {
	return m.Collector.Report(name, value)
}

// MarkUnavailable resets a declared metric to the unavailable value.
func (m *Metrics) MarkUnavailable(name string) error {
	return m.Collector.MarkUnavailable(name)
}

// Names returns the declared metric names.
func (m *Metrics) Names() []string {
	return m.Collector.Names()
}
