package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. It fails when the configured scrape path cannot be
// used as a literal route.
func (h *Handler) Init() (*chi.Mux, error) {
	scrapePath, err := ScrapePath(h.runtime.Prometheus.ScrapeEndpoint.BaseURIPath)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Method(http.MethodGet, scrapePath, h.exporter.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getVersion)
		r.Get("/configuration/runtime", h.getRuntimeConfiguration)

		r.Get("/metrics", h.listMetrics)
		r.Put("/metrics/{name}", h.reportMetric)
		r.Delete("/metrics/{name}", h.clearMetric)
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router, nil
}

// ScrapePath turns a configured base URI path into a router pattern:
// surrounding slashes and spaces are dropped and a single leading slash
// is added. Route metacharacters ('*', '{', '}') are rejected, so the path
// always matches literally.
func ScrapePath(base string) (string, error) {
	if strings.ContainsAny(base, "*{}") {
		return "", fmt.Errorf("%w: %q", ErrInvalidScrapePath, base)
	}
	return "/" + strings.Trim(strings.TrimSpace(base), "/"), nil
}
