package server

import "context"

// Server defines the lifecycle contract of the stub server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down.
	RunServer()

	// Run serves until ctx is done or the listener fails. A graceful stop
	// returns nil.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for active handlers
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
