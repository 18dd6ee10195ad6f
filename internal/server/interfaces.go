package server

import "context"

// Server defines the lifecycle contract of the background transport.
type Server interface {
	// RunServer serves requests and blocks until ctx is done or a stop
	// signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	// Addr returns the bound listener address.
	Addr() string
}
