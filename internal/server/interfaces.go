package server

// Server defines the lifecycle contract of the scraper's listener.
type Server interface {
	// RunServer serves requests and blocks until a termination signal
	// arrives or the listener fails.
	RunServer()

	// Shutdown gracefully stops the listener.
	Shutdown()
}
