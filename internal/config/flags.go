package config

import (
	"flag"
	"fmt"
	"io"
)

// flagDocument holds the command-line flags that were set explicitly.
// Flags left at their zero value do not reach the layer, so an unset flag
// never hides a value from the file or the environment.
type flagDocument struct {
	configPath string
	values     map[Path]string
}

// flagPaths maps flag names onto the leaves they override.
var flagPaths = map[string]Path{
	"port":                PathServerHTTPPort,
	"verbosity":           PathTelemetryDefaultVerbosity,
	"container-logs":      PathContainerLogsIsEnabled,
	"metric-timestamps":   PathPrometheusEnableMetricTimestamps,
	"unavailable-value":   PathPrometheusMetricUnavailableValue,
	"scrape-path":         PathPrometheusScrapeEndpointBaseURIPath,
	"metrics-declaration": PathMetricsConfigurationAbsolutePath,
}

// parseFlags parses args (without the program name).
//
// Flags:
//
//	-c/-config path to a YAML, JSON or TOML configuration file
//	-port HTTP port of the scrape endpoint
//	-verbosity default telemetry verbosity (e.g. "Warning")
//	-container-logs enable container logs ("true"/"false")
//	-metric-timestamps attach timestamps to exposed samples
//	-unavailable-value value reported for unavailable metrics
//	-scrape-path base URI path of the scrape endpoint
//	-metrics-declaration absolute path of the metric declaration file
func parseFlags(args []string) (*flagDocument, error) {
	fs := flag.NewFlagSet("scraper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configPath string
	fs.StringVar(&configPath, "c", "", "Configuration file path")
	fs.StringVar(&configPath, "config", "", "Configuration file path (alias)")

	raw := make(map[string]*string, len(flagPaths))
	for name, path := range flagPaths {
		raw[name] = fs.String(name, "", "Overrides "+string(path))
	}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	doc := &flagDocument{
		configPath: configPath,
		values:     make(map[Path]string),
	}
	fs.Visit(func(f *flag.Flag) {
		if path, ok := flagPaths[f.Name]; ok {
			doc.values[path] = *raw[f.Name]
		}
	})

	return doc, nil
}

func (d *flagDocument) Name() string {
	return "flags"
}

func (d *flagDocument) Load() (map[string]any, error) {
	tree := make(map[string]any)
	for path, v := range d.values {
		setPath(tree, path, v)
	}
	return tree, nil
}
