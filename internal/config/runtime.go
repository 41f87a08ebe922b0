// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"math"
	"strconv"
)

// RuntimeConfiguration is the fully resolved configuration of the scraper.
// It is produced once by [Resolve] and treated as read-only afterwards.
//
// Every field carries a concrete value except
// Telemetry.ApplicationInsights.InstrumentationKey, which stays nil when it
// was not supplied.
type RuntimeConfiguration struct {
	// Server holds settings of the inbound HTTP listener.
	Server ServerSettings `json:"server"`

	// Telemetry holds verbosity and sink settings for the scraper's own logs.
	Telemetry TelemetrySettings `json:"telemetry"`

	// Prometheus holds settings of the Prometheus scrape endpoint.
	Prometheus PrometheusSettings `json:"prometheus"`

	// MetricsConfiguration points at the metric declaration document.
	MetricsConfiguration MetricsConfiguration `json:"metricsConfiguration"`
}

// ServerSettings holds settings of the inbound HTTP listener.
type ServerSettings struct {
	// HTTPPort is the TCP port the HTTP listener binds to.
	HTTPPort int `json:"httpPort"`
}

// TelemetrySettings configures where and how verbosely the scraper logs.
type TelemetrySettings struct {
	// DefaultVerbosity is the minimal level emitted when a sink does not
	// narrow it down.
	DefaultVerbosity LogLevel `json:"defaultVerbosity"`

	ApplicationInsights ApplicationInsightsSettings `json:"applicationInsights"`
	ContainerLogs       ContainerLogsSettings       `json:"containerLogs"`
}

// ApplicationInsightsSettings configures the Application Insights sink.
type ApplicationInsightsSettings struct {
	IsEnabled bool `json:"isEnabled"`

	// InstrumentationKey has no default. It is nil unless supplied.
	InstrumentationKey *string `json:"instrumentationKey"`

	Verbosity LogLevel `json:"verbosity"`
}

// ContainerLogsSettings configures the stdout sink.
type ContainerLogsSettings struct {
	IsEnabled bool     `json:"isEnabled"`
	Verbosity LogLevel `json:"verbosity"`
}

// PrometheusSettings configures the scrape endpoint and how samples are
// rendered on it.
type PrometheusSettings struct {
	// EnableMetricTimestamps attaches the measurement time to every sample.
	EnableMetricTimestamps bool `json:"enableMetricTimestamps"`

	// MetricUnavailableValue is reported for a declared metric whose value
	// could not be obtained.
	MetricUnavailableValue float64 `json:"metricUnavailableValue"`

	ScrapeEndpoint ScrapeEndpoint `json:"scrapeEndpoint"`
}

// MarshalJSON renders a non-finite MetricUnavailableValue ("NaN", "+Inf",
// "-Inf") as a string, which encoding/json cannot emit as a number.
func (s PrometheusSettings) MarshalJSON() ([]byte, error) {
	type plain PrometheusSettings
	out := struct {
		plain
		MetricUnavailableValue any `json:"metricUnavailableValue"`
	}{plain: plain(s), MetricUnavailableValue: s.MetricUnavailableValue}

	if math.IsNaN(s.MetricUnavailableValue) || math.IsInf(s.MetricUnavailableValue, 0) {
		out.MetricUnavailableValue = strconv.FormatFloat(s.MetricUnavailableValue, 'f', -1, 64)
	}

	return json.Marshal(out)
}

// ScrapeEndpoint describes where Prometheus scrapes the scraper.
type ScrapeEndpoint struct {
	BaseURIPath string `json:"baseUriPath"`
}

// MetricsConfiguration points at the metric declaration document.
type MetricsConfiguration struct {
	// AbsolutePath is the filesystem location of the metric declarations.
	AbsolutePath string `json:"absolutePath"`
}

// Redacted returns a copy of c that is safe to log or expose: a supplied
// instrumentation key is replaced by a fixed mask.
func (c RuntimeConfiguration) Redacted() RuntimeConfiguration {
	if c.Telemetry.ApplicationInsights.InstrumentationKey != nil {
		masked := redactedValue
		c.Telemetry.ApplicationInsights.InstrumentationKey = &masked
	}
	return c
}

const redactedValue = "***"
