package server

// Server is the lifecycle contract for the transport listeners this package
// manages. RunServer blocks for the life of the process; Shutdown is what the
// signal handler calls to drain in-flight requests before exit.
type Server interface {
	// RunServer starts listening and blocks until the server is stopped.
	RunServer()

	// Shutdown drains in-flight requests and closes the listener.
	Shutdown()
}
