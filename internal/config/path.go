package config

import "strings"

// Path addresses a node of the configuration tree, e.g. "Server.HttpPort".
// Segments are separated by dots and compared case-insensitively.
type Path string

// Leaf paths of the runtime configuration schema.
const (
	PathServerHTTPPort = Path("Server.HttpPort")

	PathTelemetryDefaultVerbosity             = Path("Telemetry.DefaultVerbosity")
	PathApplicationInsightsIsEnabled          = Path("Telemetry.ApplicationInsights.IsEnabled")
	PathApplicationInsightsInstrumentationKey = Path("Telemetry.ApplicationInsights.InstrumentationKey")
	PathApplicationInsightsVerbosity          = Path("Telemetry.ApplicationInsights.Verbosity")
	PathContainerLogsIsEnabled                = Path("Telemetry.ContainerLogs.IsEnabled")
	PathContainerLogsVerbosity                = Path("Telemetry.ContainerLogs.Verbosity")
	PathPrometheusEnableMetricTimestamps      = Path("Prometheus.EnableMetricTimestamps")
	PathPrometheusMetricUnavailableValue      = Path("Prometheus.MetricUnavailableValue")
	PathPrometheusScrapeEndpointBaseURIPath   = Path("Prometheus.ScrapeEndpoint.BaseUriPath")
	PathMetricsConfigurationAbsolutePath      = Path("MetricsConfiguration.AbsolutePath")
)

// Segments splits p into its non-empty segments.
func (p Path) Segments() []string {
	if p == "" {
		return nil
	}
	parts := strings.Split(string(p), ".")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// Child returns the path of the named child of p.
func (p Path) Child(name string) Path {
	if p == "" {
		return Path(name)
	}
	return p + "." + Path(name)
}

// key normalizes p for map lookups.
func (p Path) key() string {
	return strings.ToLower(string(p))
}
