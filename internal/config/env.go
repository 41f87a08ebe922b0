// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable read by the scraper.
const EnvPrefix = "SCRAPER_"

// envDocument mirrors the runtime configuration with one optional raw
// string per leaf. Pointer fields stay nil when the variable is unset or
// empty, which keeps them absent in the resulting layer.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: variable name of a scalar field.
type envDocument struct {
	// ConfigPath selects the configuration file.
	// Env: SCRAPER_CONFIG
	ConfigPath *string `env:"CONFIG"`

	Server struct {
		// Env: SCRAPER_SERVER_HTTP_PORT
		HTTPPort *string `env:"HTTP_PORT"`
	} `envPrefix:"SERVER_"`

	Telemetry struct {
		// Env: SCRAPER_TELEMETRY_DEFAULT_VERBOSITY
		DefaultVerbosity *string `env:"DEFAULT_VERBOSITY"`

		ApplicationInsights struct {
			// Env: SCRAPER_TELEMETRY_APPLICATION_INSIGHTS_IS_ENABLED
			IsEnabled *string `env:"IS_ENABLED"`
			// Env: SCRAPER_TELEMETRY_APPLICATION_INSIGHTS_INSTRUMENTATION_KEY
			InstrumentationKey *string `env:"INSTRUMENTATION_KEY"`
			// Env: SCRAPER_TELEMETRY_APPLICATION_INSIGHTS_VERBOSITY
			Verbosity *string `env:"VERBOSITY"`
		} `envPrefix:"APPLICATION_INSIGHTS_"`

		ContainerLogs struct {
			// Env: SCRAPER_TELEMETRY_CONTAINER_LOGS_IS_ENABLED
			IsEnabled *string `env:"IS_ENABLED"`
			// Env: SCRAPER_TELEMETRY_CONTAINER_LOGS_VERBOSITY
			Verbosity *string `env:"VERBOSITY"`
		} `envPrefix:"CONTAINER_LOGS_"`
	} `envPrefix:"TELEMETRY_"`

	Prometheus struct {
		// Env: SCRAPER_PROMETHEUS_ENABLE_METRIC_TIMESTAMPS
		EnableMetricTimestamps *string `env:"ENABLE_METRIC_TIMESTAMPS"`
		// Env: SCRAPER_PROMETHEUS_METRIC_UNAVAILABLE_VALUE
		MetricUnavailableValue *string `env:"METRIC_UNAVAILABLE_VALUE"`

		ScrapeEndpoint struct {
			// Env: SCRAPER_PROMETHEUS_SCRAPE_ENDPOINT_BASE_URI_PATH
			BaseURIPath *string `env:"BASE_URI_PATH"`
		} `envPrefix:"SCRAPE_ENDPOINT_"`
	} `envPrefix:"PROMETHEUS_"`

	MetricsConfiguration struct {
		// Env: SCRAPER_METRICS_CONFIGURATION_ABSOLUTE_PATH
		AbsolutePath *string `env:"ABSOLUTE_PATH"`
	} `envPrefix:"METRICS_CONFIGURATION_"`
}

// parseEnv populates an envDocument from the process environment using the
// caarlos0/env library.
//
// Returns a wrapped error if env.Parse fails.
func parseEnv() (*envDocument, error) {
	doc := &envDocument{}
	if err := env.ParseWithOptions(doc, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return doc, nil
}

func (d *envDocument) Name() string {
	return "environment"
}

// Load turns the set variables into a layer of raw string scalars. Type
// coercion is left to the resolver.
func (d *envDocument) Load() (map[string]any, error) {
	tree := make(map[string]any)
	for path, v := range map[Path]*string{
		PathServerHTTPPort:                        d.Server.HTTPPort,
		PathTelemetryDefaultVerbosity:             d.Telemetry.DefaultVerbosity,
		PathApplicationInsightsIsEnabled:          d.Telemetry.ApplicationInsights.IsEnabled,
		PathApplicationInsightsInstrumentationKey: d.Telemetry.ApplicationInsights.InstrumentationKey,
		PathApplicationInsightsVerbosity:          d.Telemetry.ApplicationInsights.Verbosity,
		PathContainerLogsIsEnabled:                d.Telemetry.ContainerLogs.IsEnabled,
		PathContainerLogsVerbosity:                d.Telemetry.ContainerLogs.Verbosity,
		PathPrometheusEnableMetricTimestamps:      d.Prometheus.EnableMetricTimestamps,
		PathPrometheusMetricUnavailableValue:      d.Prometheus.MetricUnavailableValue,
		PathPrometheusScrapeEndpointBaseURIPath:   d.Prometheus.ScrapeEndpoint.BaseURIPath,
		PathMetricsConfigurationAbsolutePath:      d.MetricsConfiguration.AbsolutePath,
	} {
		if v != nil {
			setPath(tree, path, *v)
		}
	}
	return tree, nil
}
