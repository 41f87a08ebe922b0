package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestFileSource_Formats(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "yaml",
			file: "runtime.yaml",
			body: `
server:
  httpPort: 9090
telemetry:
  containerLogs:
    isEnabled: false
prometheus:
  metricUnavailableValue: 3.5
`,
		},
		{
			name: "json",
			file: "runtime.json",
			body: `{
				"server": { "httpPort": 9090 },
				"telemetry": { "containerLogs": { "isEnabled": false } },
				"prometheus": { "metricUnavailableValue": 3.5 }
			}`,
		},
		{
			name: "toml",
			file: "runtime.toml",
			body: `
[server]
httpPort = 9090

[telemetry.containerLogs]
isEnabled = false

[prometheus]
metricUnavailableValue = 3.5
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			src := newFileSource(writeConfigFile(t, tt.file, tt.body), true)

			// Act
			tree, err := src.Load()
			require.NoError(t, err)
			cfg, err := Resolve(NewDocument(tree))

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 9090, cfg.Server.HTTPPort)
			assert.False(t, cfg.Telemetry.ContainerLogs.IsEnabled)
			assert.Equal(t, 3.5, cfg.Prometheus.MetricUnavailableValue)
			assert.Equal(t, DefaultPrometheusScrapeEndpointBaseURIPath, cfg.Prometheus.ScrapeEndpoint.BaseURIPath)
			assert.Nil(t, cfg.Telemetry.ApplicationInsights.InstrumentationKey)
		})
	}
}

func TestFileSource_YAMLNullIsAbsent(t *testing.T) {
	src := newFileSource(writeConfigFile(t, "runtime.yml", `
telemetry:
  applicationInsights:
    instrumentationKey: ~
    isEnabled: true
`), true)

	tree, err := src.Load()
	require.NoError(t, err)

	cfg, err := Resolve(NewDocument(tree))
	require.NoError(t, err)
	assert.True(t, cfg.Telemetry.ApplicationInsights.IsEnabled)
	assert.Nil(t, cfg.Telemetry.ApplicationInsights.InstrumentationKey)
}

func TestFileSource_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	t.Run("optional", func(t *testing.T) {
		tree, err := newFileSource(missing, false).Load()
		require.NoError(t, err)
		assert.Nil(t, tree)
	})

	t.Run("required", func(t *testing.T) {
		_, err := newFileSource(missing, true).Load()
		assert.ErrorIs(t, err, ErrConfigFileNotFound)
	})
}

func TestFileSource_EmptyPath(t *testing.T) {
	tree, err := newFileSource("", true).Load()
	require.NoError(t, err)
	assert.Nil(t, tree)
}

func TestFileSource_UnsupportedExtension(t *testing.T) {
	_, err := newFileSource(writeConfigFile(t, "runtime.ini", "a=b"), true).Load()
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFileSource_Malformed(t *testing.T) {
	for name, body := range map[string]string{
		"runtime.yaml": "server: [unterminated",
		"runtime.json": `{"server": `,
		"runtime.toml": "[server\nhttpPort = 1",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := newFileSource(writeConfigFile(t, name, body), true).Load()
			assert.Error(t, err)
		})
	}
}

func TestFileSource_Name(t *testing.T) {
	assert.Equal(t, "file /etc/runtime.yaml", newFileSource("/etc/runtime.yaml", false).Name())
}
