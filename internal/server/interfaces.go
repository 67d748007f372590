package server

// Server runs the configured transports together with the background
// workers.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT, then drains the
	// transports and waits for the workers.
	RunServer()

	// Shutdown stops the transports without waiting for a signal.
	Shutdown()
}
