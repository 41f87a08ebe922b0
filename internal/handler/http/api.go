package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-metric-scraper/internal/logger"
	"github.com/MKhiriev/go-metric-scraper/internal/metrics"

	"github.com/go-chi/chi/v5"
)

type measurementRequest struct {
	Value *float64 `json:"value"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}

// getRuntimeConfiguration exposes the resolved configuration with secrets
// masked.
func (h *Handler) getRuntimeConfiguration(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.runtime.Redacted(), http.StatusOK)
}

func (h *Handler) listMetrics(w http.ResponseWriter, r *http.Request) {
	names := h.exporter.Names()
	if names == nil {
		names = []string{}
	}
	writeJSON(w, r, names, http.StatusOK)
}

func (h *Handler) reportMetric(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	var req measurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Value == nil {
		log.Err(errMissingValue).Str("metric", name).Send()
		http.Error(w, errMissingValue.Error(), http.StatusBadRequest)
		return
	}

	if err := h.exporter.Report(name, *req.Value); err != nil {
		h.writeMetricError(w, r, name, err)
		return
	}

	log.Debug().Str("metric", name).Float64("value", *req.Value).Msg("measurement reported")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearMetric(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.exporter.MarkUnavailable(name); err != nil {
		h.writeMetricError(w, r, name, err)
		return
	}

	logger.FromRequest(r).Debug().Str("metric", name).Msg("metric marked unavailable")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeMetricError(w http.ResponseWriter, r *http.Request, name string, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, metrics.ErrUnknownMetric):
		log.Err(err).Str("metric", name).Msg("metric is not declared")
		http.Error(w, "metric is not declared", http.StatusNotFound)
	default:
		log.Err(err).Str("metric", name).Msg("unexpected error occurred while updating metric")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.FromRequest(r).Err(fmt.Errorf("error writing data to JSON: %w", err)).Send()
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}
