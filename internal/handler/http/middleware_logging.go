package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-metric-scraper/internal/logger"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withLogging logs every served request and records it in the request
// metrics under its route pattern.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.statusCode()

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		h.exporter.ObserveRequest(route, r.Method, status, duration)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("route", route).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
