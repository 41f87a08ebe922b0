package http

//go:generate mockgen -source=interfaces.go -destination=../../mock/exporter_mock.go -package=mock

import (
	"net/http"
	"time"
)

// Exporter is the metrics backend the handler exposes and feeds.
type Exporter interface {
	// Handler serves the scrape endpoint.
	Handler() http.Handler

	// ObserveRequest records a served request.
	ObserveRequest(route, method string, status int, duration time.Duration)

	Report(name string, value float64) error
	MarkUnavailable(name string) error
	Names() []string
}
