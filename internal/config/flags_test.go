package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		configPath string
		values     map[Path]string
	}{
		{
			name:   "no flags",
			args:   nil,
			values: map[Path]string{},
		},
		{
			name:       "short config alias",
			args:       []string{"-c", "/tmp/runtime.yaml"},
			configPath: "/tmp/runtime.yaml",
			values:     map[Path]string{},
		},
		{
			name:       "long config alias",
			args:       []string{"-config=/tmp/runtime.toml"},
			configPath: "/tmp/runtime.toml",
			values:     map[Path]string{},
		},
		{
			name: "overrides",
			args: []string{"-port", "9090", "-scrape-path", "/scrape", "-verbosity", "Debug"},
			values: map[Path]string{
				PathServerHTTPPort:                      "9090",
				PathPrometheusScrapeEndpointBaseURIPath: "/scrape",
				PathTelemetryDefaultVerbosity:           "Debug",
			},
		},
		{
			name: "explicit empty value is kept",
			args: []string{"-metrics-declaration="},
			values: map[Path]string{
				PathMetricsConfigurationAbsolutePath: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.configPath, doc.configPath)
			assert.Equal(t, tt.values, doc.values)
		})
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-bogus", "1"})
	assert.Error(t, err)
}

func TestFlagDocument_Load(t *testing.T) {
	doc, err := parseFlags([]string{"-container-logs=false", "-unavailable-value", "0"})
	require.NoError(t, err)

	tree, err := doc.Load()
	require.NoError(t, err)

	cfg, err := Resolve(NewDocument(tree))
	require.NoError(t, err)
	assert.False(t, cfg.Telemetry.ContainerLogs.IsEnabled)
	assert.Equal(t, 0.0, cfg.Prometheus.MetricUnavailableValue)
	assert.Equal(t, DefaultServerHTTPPort, cfg.Server.HTTPPort)
	assert.Equal(t, "flags", doc.Name())
}
