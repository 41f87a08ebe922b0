package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-metric-scraper/internal/config"
	myHTTP "github.com/MKhiriev/go-metric-scraper/internal/handler/http"
	"github.com/MKhiriev/go-metric-scraper/internal/logger"
	"github.com/MKhiriev/go-metric-scraper/internal/metrics"
	"github.com/MKhiriev/go-metric-scraper/internal/server"

	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("go-metric-scraper")
	cfg, err := config.GetRuntimeConfiguration(os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error resolving runtime configuration")
	}

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log := logger.NewRuntimeLogger("go-metric-scraper", cfg.Telemetry)
	log.Debug().Any("config", cfg.Redacted()).Msg("resolved runtime configuration")

	if cfg.Telemetry.ApplicationInsights.IsEnabled {
		log.Warn().
			Bool("instrumentationKeySet", cfg.Telemetry.ApplicationInsights.InstrumentationKey != nil).
			Msg("application insights sink is configured but not available in this build, using container logs only")
	}

	exporter, err := metrics.NewMetrics(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating metrics")
	}

	handler := myHTTP.NewHandler(cfg, exporter, buildVersion, log)
	router, err := handler.Init()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating router")
	}

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
