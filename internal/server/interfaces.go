package server

// Server defines the lifecycle contract of the transport server managed by
// this package.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives and the server has drained.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
