// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-metric-scraper/internal/config"

	"github.com/prometheus/client_golang/prometheus"
)

type measurement struct {
	value     float64
	available bool
	at        time.Time
}

// Collector is a prometheus.Collector that emits one gauge per declared
// metric. It is safe for concurrent use.
type Collector struct {
	mu       sync.RWMutex
	settings config.PrometheusSettings
	descs    map[string]*prometheus.Desc
	values   map[string]measurement
	names    []string

	now func() time.Time
}

// NewCollector builds a collector for the given definitions. Every metric
// starts out unavailable.
func NewCollector(settings config.PrometheusSettings, definitions []MetricDefinition) *Collector {
	c := &Collector{
		settings: settings,
		descs:    make(map[string]*prometheus.Desc, len(definitions)),
		values:   make(map[string]measurement, len(definitions)),
		now:      time.Now,
	}

	for _, d := range definitions {
		c.descs[d.Name] = prometheus.NewDesc(d.Name, d.Description, nil, prometheus.Labels(d.Labels))
		c.values[d.Name] = measurement{}
		c.names = append(c.names, d.Name)
	}
	sort.Strings(c.names)

	return c
}

// Report records a measured value for the named metric.
func (c *Collector) Report(name string, value float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.descs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMetric, name)
	}
	c.values[name] = measurement{value: value, available: true, at: c.now()}

	return nil
}

// MarkUnavailable drops the last value of the named metric so that scrapes
// report the unavailable value again.
func (c *Collector) MarkUnavailable(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.descs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMetric, name)
	}
	c.values[name] = measurement{at: c.now()}

	return nil
}

// Names returns the declared metric names in lexical order.
func (c *Collector) Names() []string {
	return append([]string(nil), c.names...)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, name := range c.names {
		ch <- c.descs[name]
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, name := range c.names {
		m := c.values[name]

		value := c.settings.MetricUnavailableValue
		if m.available {
			value = m.value
		}

		metric, err := prometheus.NewConstMetric(c.descs[name], prometheus.GaugeValue, value)
		if err != nil {
			ch <- prometheus.NewInvalidMetric(c.descs[name], err)
			continue
		}

		if c.settings.EnableMetricTimestamps {
			at := m.at
			if at.IsZero() {
				at = c.now()
			}
			metric = prometheus.NewMetricWithTimestamp(at, metric)
		}

		ch <- metric
	}
}
