// Package server runs the scraper's HTTP listener.
//
// It binds the router to the configured port, blocks until a termination
// signal arrives or the listener fails, and shuts the listener down
// gracefully.
package server
