// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "math"

// Documented defaults for every leaf of [RuntimeConfiguration].
// InstrumentationKey deliberately has none.
const (
	DefaultServerHTTPPort = 80

	DefaultTelemetryVerbosity                  = LogLevelError
	DefaultApplicationInsightsIsEnabled        = false
	DefaultApplicationInsightsVerbosity        = LogLevelError
	DefaultContainerLogsIsEnabled              = true
	DefaultContainerLogsVerbosity              = LogLevelError
	DefaultPrometheusEnableMetricTimestamps    = true
	DefaultPrometheusScrapeEndpointBaseURIPath = "/metrics"
	DefaultMetricsConfigurationAbsolutePath    = "/config/metrics-declaration.yaml"
)

// DefaultPrometheusMetricUnavailableValue is reported when a metric value
// cannot be obtained.
var DefaultPrometheusMetricUnavailableValue = math.NaN()

// defaultTable is process-wide and read-only after package initialization.
var defaultTable = map[string]any{
	PathServerHTTPPort.key():                      DefaultServerHTTPPort,
	PathTelemetryDefaultVerbosity.key():           DefaultTelemetryVerbosity,
	PathApplicationInsightsIsEnabled.key():        DefaultApplicationInsightsIsEnabled,
	PathApplicationInsightsVerbosity.key():        DefaultApplicationInsightsVerbosity,
	PathContainerLogsIsEnabled.key():              DefaultContainerLogsIsEnabled,
	PathContainerLogsVerbosity.key():              DefaultContainerLogsVerbosity,
	PathPrometheusEnableMetricTimestamps.key():    DefaultPrometheusEnableMetricTimestamps,
	PathPrometheusMetricUnavailableValue.key():    DefaultPrometheusMetricUnavailableValue,
	PathPrometheusScrapeEndpointBaseURIPath.key(): DefaultPrometheusScrapeEndpointBaseURIPath,
	PathMetricsConfigurationAbsolutePath.key():    DefaultMetricsConfigurationAbsolutePath,
}

// DefaultValue returns the documented default for the leaf at path.
// The second result is false for unknown paths and for leaves without a
// default (the instrumentation key).
func DefaultValue(path Path) (any, bool) {
	v, ok := defaultTable[path.key()]
	return v, ok
}

// DefaultRuntimeConfiguration returns a configuration built entirely from
// the default table.
func DefaultRuntimeConfiguration() RuntimeConfiguration {
	return RuntimeConfiguration{
		Server: ServerSettings{
			HTTPPort: DefaultServerHTTPPort,
		},
		Telemetry: TelemetrySettings{
			DefaultVerbosity: DefaultTelemetryVerbosity,
			ApplicationInsights: ApplicationInsightsSettings{
				IsEnabled: DefaultApplicationInsightsIsEnabled,
				Verbosity: DefaultApplicationInsightsVerbosity,
			},
			ContainerLogs: ContainerLogsSettings{
				IsEnabled: DefaultContainerLogsIsEnabled,
				Verbosity: DefaultContainerLogsVerbosity,
			},
		},
		Prometheus: PrometheusSettings{
			EnableMetricTimestamps: DefaultPrometheusEnableMetricTimestamps,
			MetricUnavailableValue: DefaultPrometheusMetricUnavailableValue,
			ScrapeEndpoint: ScrapeEndpoint{
				BaseURIPath: DefaultPrometheusScrapeEndpointBaseURIPath,
			},
		},
		MetricsConfiguration: MetricsConfiguration{
			AbsolutePath: DefaultMetricsConfigurationAbsolutePath,
		},
	}
}
