package server

// Server is the lifecycle of the API server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then shuts down gracefully and returns.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to the configured shutdown timeout.
	Shutdown()
}
