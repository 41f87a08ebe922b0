package http

import (
	"github.com/MKhiriev/go-metric-scraper/internal/config"
	"github.com/MKhiriev/go-metric-scraper/internal/logger"
)

type Handler struct {
	runtime  config.RuntimeConfiguration
	exporter Exporter
	version  string

	logger *logger.Logger
}

func NewHandler(runtime config.RuntimeConfiguration, exporter Exporter, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		runtime:  runtime,
		exporter: exporter,
		version:  version,
		logger:   logger,
	}
}
