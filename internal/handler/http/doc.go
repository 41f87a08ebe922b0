// Package http implements the HTTP surface of the scraper.
//
// It serves the Prometheus scrape endpoint on the configured base path and a
// small JSON API under /api/v1 for health checks, inspecting the resolved
// runtime configuration and pushing metric measurements. Request tracing,
// access logging and request metrics are handled by middleware.
package http
