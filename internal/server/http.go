package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-metric-scraper/internal/config"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type httpServer struct {
	server *http.Server
}

func newHTTPServer(router http.Handler, cfg config.ServerSettings) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// RunServer blocks until the listener stops. A graceful shutdown is not an
// error.
func (h *httpServer) RunServer() error {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return h.server.Shutdown(ctx)
}
