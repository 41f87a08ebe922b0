// Package metrics exposes declared metrics in the Prometheus text format.
//
// A metric declaration file lists the metrics the scraper reports. Every
// declared metric is emitted on each scrape: with its last reported value,
// or with the configured unavailable value until one arrives. The package
// also records HTTP request counters and latencies for the scraper's own
// endpoints.
package metrics
